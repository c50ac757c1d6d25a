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

// Package cpp implements a preprocessing character stream transducer for
// C-family source text (C, C++, D, Vera, C#, Objective-C). It elides
// comments and string/character literals, folds trigraphs and digraphs,
// joins backslash-continued lines, and consumes preprocessor directives,
// suppressing bytes that belong to inactive #if/#ifdef branches. Every
// #define (and #pragma weak) encountered along the way is reported to an
// injected TagSink.
//
// cpp does not expand macros, evaluate #if expressions numerically, or
// resolve #include. It is a filter in front of a downstream
// lexer/parser, not a compiler front end.
package cpp

import "github.com/ctagsgo/cxxpp/internal/collections"

// maxNestLevel bounds the conditional stack at 20 frames: frame 0, the
// always-active outer frame, plus 19 nested #if levels.
const maxNestLevel = 19

// directiveState is the state of the second-level directive-parsing state
// machine.
type directiveState int

const (
	directiveNone directiveState = iota
	directiveHash
	directiveDefine
	directiveUndef
	directiveIf
	directivePragma
)

// directiveInfo tracks the directive currently being parsed, if any, and
// the conditional stack.
type directiveInfo struct {
	state     directiveState
	accept    bool // true iff a '#' here would start a directive
	active    bool // true from '#' until the directive's closing newline
	nestLevel int
	ifdef     [maxNestLevel + 1]ConditionalFrame

	// pendingTag holds a #define/#undef macro tag discovered mid-directive,
	// awaiting emission when the directive closes (see closeDirective).
	pendingTag *pendingMacroTag
}

// Options holds the host tag extractor's settings: the core reads them but
// never writes them.
type Options struct {
	// FileScopeTags, if false, suppresses tags whose macro has file scope.
	FileScopeTags bool
	// LineNumberEntries is true unless the host locates tags purely by
	// search pattern and has no use for line numbers.
	LineNumberEntries bool
	// IF0 causes `#if 0` blocks to be scanned instead of skipped, so tags
	// can still be extracted from dead code.
	IF0 bool
	// IncludeDefineTags gates macro-tag emission entirely.
	IncludeDefineTags bool
}

// TagSink receives every tag the transducer finds. The core only ever
// constructs and emits MacroTag values; it never inspects the sink's own
// state.
type TagSink interface {
	EmitMacroTag(tag MacroTag)
}

// MacroKind and MacroKindName identify the one tag kind this transducer
// emits: the conventional single-letter kind 'd' for macro definitions.
const (
	MacroKind     = 'd'
	MacroKindName = "macro"
)

// MacroTag is the single kind of tag this transducer ever emits: one per
// #define or #undef and one per `#pragma weak NAME`.
type MacroTag struct {
	Name         string
	Signature    string // parenthesized argument list, e.g. "(a,b)"; empty if unparameterized
	Line         int    // 1-based line of the macro name; 0 when unavailable or disabled
	IsFileScope  bool
	LineNumber   bool
	TruncateLine bool
}

// CursorQuerier is optionally implemented by a ByteReader that can report
// the line/column of its read head (BufferReader does). When present and
// Options.LineNumberEntries is set, emitted tags carry a line number.
type CursorQuerier interface {
	Cursor() Cursor
}

// HeaderFileQuery reports whether the input being scanned is a header
// file; macros in non-header files are file-scope.
type HeaderFileQuery func() bool

// State is a single extraction session. It is not safe for concurrent use;
// the host must serialize access if it needs to re-enter the core from
// multiple goroutines.
type State struct {
	reader ByteReader
	pb     pushback

	resolveRequired bool

	hasAtLiteralStrings  bool
	hasRawLiteralStrings bool

	directive directiveInfo

	// braceFormat: when true, the downstream parser uses brace counting
	// rather than statement completion to delimit blocks, which disables
	// chooseBranch and the single-branch heuristics that depend on it.
	braceFormat bool

	opts     Options
	sink     TagSink
	isHeader HeaderFileQuery

	// macros tracks every name seen in a #define, minus any later #undef.
	// It plays no role in branch selection; it only backs IsDefined.
	macros collections.Set[string]
}

// IsDefined reports whether name has been #defined (and not since
// #undef'd) in an active branch of this session's input so far.
func (s *State) IsDefined(name string) bool { return s.macros.Contains(name) }

// NewState constructs a fresh extraction session.
func NewState(reader ByteReader, sink TagSink, isHeader HeaderFileQuery, opts Options, braceFormat, hasAtLit, hasRawLit bool) *State {
	return &State{
		reader:               reader,
		braceFormat:          braceFormat,
		hasAtLiteralStrings:  hasAtLit,
		hasRawLiteralStrings: hasRawLit,
		opts:                 opts,
		sink:                 sink,
		isHeader:             isHeader,
		macros:               make(collections.Set[string]),
		directive: directiveInfo{
			state:  directiveNone,
			accept: true, // a '#' at stream start opens a directive
		},
	}
}

// Terminate releases the session's scratch state. Go has no destructor,
// but the method gives a caller holding a *State an explicit end to the
// session.
func (s *State) Terminate() {
	s.directive.pendingTag = nil
}

// BeginStatement sets resolveRequired, signalling that the downstream
// parser has started a multi-token construct.
func (s *State) BeginStatement() { s.resolveRequired = true }

// EndStatement clears resolveRequired at a statement boundary.
func (s *State) EndStatement() { s.resolveRequired = false }

// UngetChar pushes c back onto the stream; the next NextChar call returns it
// without further scanning. The caller must never have more than two
// characters outstanding.
func (s *State) UngetChar(c int) { ungetChar(&s.pb, c) }

// DirectiveNestLevel exposes the current conditional stack depth.
func (s *State) DirectiveNestLevel() uint { return uint(s.directive.nestLevel) }

// IsBraceFormat reports the session-wide brace-format flag.
func (s *State) IsBraceFormat() bool { return s.braceFormat }
