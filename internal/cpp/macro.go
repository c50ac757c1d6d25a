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

// cursorLine reports the 1-based line of the logical stream position, or 0
// when line numbers are disabled or the reader can't answer. The reader's
// head may run a pushed-back byte or two ahead of the logical stream; a
// newline among those bytes is not counted.
func (s *State) cursorLine() int {
	if !s.opts.LineNumberEntries {
		return 0
	}
	cq, ok := s.reader.(CursorQuerier)
	if !ok {
		return 0
	}
	line := cq.Cursor().Line
	for _, c := range s.pb.buf[:s.pb.n] {
		if c == '\n' {
			line--
		}
	}
	return line
}

// emitMacroTag builds and emits a MacroTag for name, gated by the rules
// that apply to every tag this core ever produces: a suppressed branch,
// Options.IncludeDefineTags, and file-scope filtering can all drop it
// silently.
func (s *State) emitMacroTag(name, signature string, line int) {
	if s.frame().Ignoring {
		return
	}
	if !s.opts.IncludeDefineTags {
		return
	}
	isFileScope := false
	if s.isHeader != nil {
		isFileScope = !s.isHeader()
	}
	if isFileScope && !s.opts.FileScopeTags {
		return
	}
	s.sink.EmitMacroTag(MacroTag{
		Name:         name,
		Signature:    signature,
		Line:         line,
		IsFileScope:  isFileScope,
		LineNumber:   s.opts.LineNumberEntries,
		TruncateLine: true,
	})
}

// flushPendingDefine resolves a #define/#undef tag deferred by
// handleDefineOrUndef. It is only safe to call once the directive line has
// fully passed (at the closing newline, or EOF), because a parameterized
// macro's signature is reconstructed by re-reading the whole line from
// pendingTag.startPos to the current position.
func (s *State) flushPendingDefine() {
	pt := s.directive.pendingTag
	s.directive.pendingTag = nil
	if pt == nil {
		return
	}
	if s.frame().Ignoring {
		// A define in a suppressed branch neither emits a tag nor registers
		// in the macro table.
		return
	}

	if pt.undef {
		s.macros.Remove(pt.name)
	} else {
		s.macros.Add(pt.name)
	}

	signature := ""
	if pt.parameterized {
		if sig, ok := s.ArglistFromFilePos(pt.startPos, pt.name); ok {
			signature = sig
		}
	}
	s.emitMacroTag(pt.name, signature, pt.line)
}
