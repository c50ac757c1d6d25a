// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// defaultOpts is the Options value every golden scenario test in this file
// starts from: tags enabled, no IF0 scanning, line numbers on.
var defaultOpts = Options{IncludeDefineTags: true, FileScopeTags: true, LineNumberEntries: true}

// TestNextChar_GoldenScenarios feeds small end-to-end inputs through the
// transducer and checks the filtered stream verbatim.
func TestNextChar_GoldenScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "comment folds to a single space",
			src:  "int x = 1; /* hi */ y;\n",
			want: "int x = 1;   y;\n",
		},
		{
			name: "string and char literals become sentinels",
			src:  `"abc\"de" 'x'`,
			want: "S C",
		},
		{
			name: "cpp comment runs to end of line",
			src:  "a // trailing\nb",
			want: "a \nb",
		},
		{
			name: "d comment folds to a space",
			src:  "a /+ hi +/ b",
			want: "a   b",
		},
		{
			name: "backslash-newline splices lines",
			src:  "a\\\nb",
			want: "ab",
		},
		{
			name: "if0 block is elided by default",
			src:  "#if 0\nskipped\n#endif\nkept",
			want: "kept",
		},
		{
			name: "trigraph ??= folds to a directive-opening #",
			src:  "??=define X 1\nbar",
			want: "bar",
		},
		{
			name: "trigraph ??/ before a newline splices lines",
			src:  "a??/\nb",
			want: "ab",
		},
		{
			name: "trigraph ??/ not before a newline is a literal backslash",
			src:  "a??/b",
			want: "a\\b",
		},
		{
			name: "digraphs <: and :> fold to brackets",
			src:  "a<:0:>",
			want: "a[0]",
		},
		{
			name: "raw strings become sentinels",
			src:  `R"xy(a)xy" + R"(b)"`,
			want: "S + S",
		},
		{
			name: "partial trigraph is passed through",
			src:  "a??b ?c",
			want: "a??b ?c",
		},
		{
			name: "two percent-colon digraphs yield ##",
			src:  "x %:%:y",
			want: "x ##y",
		},
		{
			name: "hash outside accepting position is literal",
			src:  "x #define F\n",
			want: "x #define F\n",
		},
		{
			name: "directive on the line after a cpp comment is recognized",
			src:  "// c\n#define X 1\ny",
			want: " \ny",
		},
		{
			name: "verbatim at-string becomes a sentinel, backslash not an escape",
			src:  `@"a\b"`,
			want: "S",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestState(tc.src, defaultOpts)
			got := renderFiltered(drain(s))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextChar_If0ScanningOption(t *testing.T) {
	src := "#if 0\nskipped\n#endif\nkept"

	s, _ := newTestState(src, defaultOpts)
	assert.Equal(t, "kept", renderFiltered(drain(s)))

	opts := defaultOpts
	opts.IF0 = true
	s2, _ := newTestState(src, opts)
	assert.Equal(t, "skipped\nkept", renderFiltered(drain(s2)))
}

func TestNextChar_DefineEmitsUnparameterizedTag(t *testing.T) {
	s, sink := newTestState("#define FOO 42\nbar", defaultOpts)
	assert.Equal(t, "bar", renderFiltered(drain(s)))
	assert.Equal(t, []string{"FOO"}, sink.names())
	assert.Empty(t, sink.tags[0].Signature)
}

func TestNextChar_ParameterizedDefineCapturesSignature(t *testing.T) {
	s, sink := newTestState("#define ADD(a,b) a+b\n", defaultOpts)
	drain(s)
	assert.Equal(t, []string{"ADD"}, sink.names())
	assert.Equal(t, "(a,b)", sink.tags[0].Signature)
}

func TestNextChar_DefineOnLastLineWithoutNewline(t *testing.T) {
	s, sink := newTestState("#define ADD(a,b) a+b", defaultOpts)
	drain(s)
	assert.Equal(t, []string{"ADD"}, sink.names())
	assert.Equal(t, "(a,b)", sink.tags[0].Signature)
}

func TestNextChar_TagsCarryLineNumbers(t *testing.T) {
	s, sink := newTestState("#define FOO 1\nint x;\n#define BAR 2\n", defaultOpts)
	drain(s)
	assert.Equal(t, []string{"FOO", "BAR"}, sink.names())
	assert.Equal(t, 1, sink.tags[0].Line)
	assert.Equal(t, 3, sink.tags[1].Line)
}

func TestNextChar_BraceFormatKeepsIf0Body(t *testing.T) {
	sink := &fakeSink{}
	s := NewState(newMemReader("#if 0\na\n#endif\nb"), sink, func() bool { return false }, defaultOpts, true, true, true)
	assert.Equal(t, "a\nb", renderFiltered(drain(s)))
}

func TestNextChar_PragmaWeakEmitsTag(t *testing.T) {
	s, sink := newTestState("#pragma weak foo\n", defaultOpts)
	drain(s)
	assert.Equal(t, []string{"foo"}, sink.names())
	assert.Empty(t, sink.tags[0].Signature)
}

func TestNextChar_PragmaOtherThanWeakEmitsNothing(t *testing.T) {
	s, sink := newTestState("#pragma once\nrest", defaultOpts)
	assert.Equal(t, "rest", renderFiltered(drain(s)))
	assert.Empty(t, sink.tags)
}

func TestNextChar_UndefEmitsTagAndClearsMacroTable(t *testing.T) {
	s, sink := newTestState("#define FOO 1\n#undef FOO\n", defaultOpts)
	drain(s)
	assert.Equal(t, []string{"FOO", "FOO"}, sink.names())
	assert.False(t, s.IsDefined("FOO"))
}

func TestNextChar_DefineInSuppressedBranchIsInvisible(t *testing.T) {
	src := "#if 0\n#define HIDDEN 1\n#endif\n#define SEEN 2\n"
	s, sink := newTestState(src, defaultOpts)
	drain(s)
	assert.Equal(t, []string{"SEEN"}, sink.names())
	assert.False(t, s.IsDefined("HIDDEN"))
	assert.True(t, s.IsDefined("SEEN"))
}

func TestNextChar_DefineTagsCanBeDisabled(t *testing.T) {
	opts := defaultOpts
	opts.IncludeDefineTags = false
	s, sink := newTestState("#define FOO 1\n", opts)
	drain(s)
	assert.Empty(t, sink.tags)
}

func TestNextChar_FileScopeTagsCanBeSuppressed(t *testing.T) {
	opts := defaultOpts
	opts.FileScopeTags = false
	sink := &fakeSink{}
	// isHeader always false => every tag is file-scope => all suppressed.
	s := NewState(newMemReader("#define FOO 1\n"), sink, func() bool { return false }, opts, false, true, true)
	drain(s)
	assert.Empty(t, sink.tags)

	// A header file's macros are never file-scope, so they survive even with
	// FileScopeTags disabled.
	sink2 := &fakeSink{}
	s2 := NewState(newMemReader("#define FOO 1\n"), sink2, func() bool { return true }, opts, false, true, true)
	drain(s2)
	assert.Equal(t, []string{"FOO"}, sink2.names())
}

func TestNextChar_EndOfStreamIsFinal(t *testing.T) {
	s, _ := newTestState("x", defaultOpts)
	assert.Equal(t, 'x', rune(s.NextChar()))
	assert.Equal(t, EOF, s.NextChar())
	assert.Equal(t, EOF, s.NextChar())
}

func TestNextChar_UnterminatedCommentReturnsEOF(t *testing.T) {
	s, _ := newTestState("a /* never closes", defaultOpts)
	out := drain(s)
	assert.Equal(t, "a ", renderFiltered(out))
}

func TestNextChar_UnterminatedStringReturnsEOFWithoutSentinel(t *testing.T) {
	s, _ := newTestState(`"never closes`, defaultOpts)
	assert.Empty(t, drain(s))
}

func TestUngetChar_BypassesScanning(t *testing.T) {
	s, _ := newTestState("ab", defaultOpts)
	first := s.NextChar()
	assert.Equal(t, 'a', rune(first))
	s.UngetChar(first)
	assert.Equal(t, 'a', rune(s.NextChar()))
	assert.Equal(t, 'b', rune(s.NextChar()))
}

func TestDirectiveNestLevel_TracksPushAndPop(t *testing.T) {
	s, _ := newTestState("#if 1\n#if 1\nbody\n#endif\n#endif\nx", defaultOpts)
	assert.EqualValues(t, 0, s.DirectiveNestLevel())
	assert.Equal(t, "body\n", renderFiltered([]int{s.NextChar(), s.NextChar(), s.NextChar(), s.NextChar(), s.NextChar()}))
	assert.EqualValues(t, 2, s.DirectiveNestLevel())
	assert.Equal(t, 'x', rune(s.NextChar()))
	assert.EqualValues(t, 0, s.DirectiveNestLevel())
	drain(s)
	assert.EqualValues(t, 0, s.DirectiveNestLevel())
}

// TestDirectiveNestLevel_CapsAtMax drives the conditional stack past its
// 19-level cap: nestLevel never leaves [0, 19], and an unmatched #endif at
// the cap doesn't panic or underflow.
func TestDirectiveNestLevel_CapsAtMax(t *testing.T) {
	var src string
	for i := 0; i < 25; i++ {
		src += "#if 1\n"
	}
	src += "body\n"
	for i := 0; i < 25; i++ {
		src += "#endif\n"
	}

	s, _ := newTestState(src, defaultOpts)
	assert.Equal(t, "body\n", renderFiltered(drain(s)))
	assert.EqualValues(t, 0, s.DirectiveNestLevel())
}

// With no statement in progress, the extractor deliberately scans every
// branch it can: only the "#if 0" heuristic suppresses a branch, and an
// #else/#elif after a scanned branch is scanned too (tags may hide in
// either arm). Branch exclusivity only kicks in under resolveRequired --
// see TestConditional_SingleBranchUnderResolveRequired.
func TestConditional_BothBranchesScannedWithoutStatement(t *testing.T) {
	src := "#if 0\na\n#else\nb\n#endif\n"
	s, _ := newTestState(src, defaultOpts)
	assert.Equal(t, "b\n", renderFiltered(drain(s)))

	src2 := "#if 1\na\n#else\nb\n#endif\n"
	s2, _ := newTestState(src2, defaultOpts)
	assert.Equal(t, "a\nb\n", renderFiltered(drain(s2)))
}

// #elif conditions are never evaluated (elif and else are handled
// identically): every branch after a suppressed "#if 0" arm is scanned.
func TestConditional_ElifBranchesAllScanned(t *testing.T) {
	src := "#if 0\na\n#elif 0\nb\n#elif 1\nc\n#else\nd\n#endif\n"
	s, _ := newTestState(src, defaultOpts)
	assert.Equal(t, "b\nc\nd\n", renderFiltered(drain(s)))
}

// TestConditional_SingleBranchUnderResolveRequired: a statement spanning
// an #if/#else/#endif, exercised once with braceFormat=false (statement
// completion heuristics apply) and once with braceFormat=true (they
// don't). Either way only one branch may be followed while the statement
// is open.
func TestConditional_SingleBranchUnderResolveRequired(t *testing.T) {
	src := "#if 1\na\n#else\nb\n#endif\nc"

	sink := &fakeSink{}
	s := NewState(newMemReader(src), sink, func() bool { return false }, defaultOpts, false, true, true)
	s.BeginStatement()
	assert.Equal(t, "a\nc", renderFiltered(drain(s)))

	sink2 := &fakeSink{}
	s2 := NewState(newMemReader(src), sink2, func() bool { return false }, defaultOpts, true, true, true)
	s2.BeginStatement()
	assert.Equal(t, "a\nc", renderFiltered(drain(s2)))
}

func TestIsBraceFormat_ReflectsConstructorArg(t *testing.T) {
	s := NewState(newMemReader(""), &fakeSink{}, nil, Options{}, true, false, false)
	assert.True(t, s.IsBraceFormat())

	s2 := NewState(newMemReader(""), &fakeSink{}, nil, Options{}, false, false, false)
	assert.False(t, s2.IsBraceFormat())
}

func TestNextChar_RawStringRequiresValidEncodingPrefix(t *testing.T) {
	// "R" directly after an identifier character is just part of that
	// identifier, not a raw-string prefix: the literal that follows is
	// elided as an ordinary string instead.
	s, _ := newTestState(`fooR"(x)"`, defaultOpts)
	assert.Equal(t, "fooRS", renderFiltered(drain(s)))
}

func TestNextChar_RawStringWithEncodingPrefixes(t *testing.T) {
	for _, prefix := range []string{"L", "u", "U", "u8"} {
		s, _ := newTestState(prefix+`R"(x)"`, defaultOpts)
		assert.Equal(t, prefix+"S", renderFiltered(drain(s)), "prefix %q", prefix)
	}
}

func TestNextChar_VeraBasedCharacterLiteral(t *testing.T) {
	s, _ := newTestState("'h1F rest", defaultOpts)
	out := drain(s)
	// The based literal consumes "h1F" with no closing quote; " rest"
	// (including the leading space) follows unchanged.
	assert.Equal(t, "C rest", renderFiltered(out))
}
