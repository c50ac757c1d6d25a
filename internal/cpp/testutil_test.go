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

// newMemReader wraps a test source string in the production BufferReader,
// which already supports the lookbehind and seek operations the raw-string
// and argument-list extractor tests need.
func newMemReader(s string) *BufferReader {
	return NewBufferReader([]byte(s))
}

// fakeSink collects every MacroTag a test session emits, in order.
type fakeSink struct {
	tags []MacroTag
}

func (f *fakeSink) EmitMacroTag(tag MacroTag) { f.tags = append(f.tags, tag) }

// names returns the name of every tag fakeSink has collected so far.
func (f *fakeSink) names() []string {
	out := make([]string, len(f.tags))
	for i, t := range f.tags {
		out[i] = t.Name
	}
	return out
}

// newTestState builds a *State over src with sensible defaults for tests
// that don't care about file-scope or pattern-locate gating: every tag is
// emitted, nothing is treated as a header file.
func newTestState(src string, opts Options) (*State, *fakeSink) {
	sink := &fakeSink{}
	s := NewState(newMemReader(src), sink, func() bool { return false }, opts, false, true, true)
	return s, sink
}

// drain reads every character NextChar produces until EOF, as an []int so
// sentinels and EOF remain distinguishable from raw bytes.
func drain(s *State) []int {
	var out []int
	for {
		c := s.NextChar()
		if c == EOF {
			return out
		}
		out = append(out, c)
	}
}

// renderFiltered turns drain's []int back into a human-readable string for
// table-driven assertions, spelling out the two sentinels and leaving every
// other value (including folded trigraphs/digraphs) as its rune.
func renderFiltered(cs []int) string {
	var out []rune
	for _, c := range cs {
		switch c {
		case StringSymbol:
			out = append(out, 'S')
		case CharSymbol:
			out = append(out, 'C')
		default:
			out = append(out, rune(c))
		}
	}
	return string(out)
}
