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

import "strings"

// maxDirectiveWord caps the keyword read after a '#'; no recognized
// directive is longer.
const maxDirectiveWord = 9

func isAlpha(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c int) bool {
	return isAlpha(c) || c == '_'
}

func isIdentCont(c int) bool {
	return isAlpha(c) || isIdentStart(c) || (c >= '0' && c <= '9')
}

// logicalPos returns the file position of the next byte NextChar will
// logically read, whether it comes from the pushback buffer or the
// underlying reader. The underlying reader's own Position() always points
// just past whatever it has physically read, which runs ahead of the
// logical stream position by exactly the number of buffered pushback
// bytes.
func (s *State) logicalPos() Pos {
	return s.reader.Position() - Pos(s.pb.len())
}

// skipHSpace consumes horizontal whitespace (space, tab) and returns the
// first other character encountered. A newline is pushed back rather than
// consumed, so the driver's own newline handling (accept/close-directive)
// still runs for it on the next NextChar iteration.
func (s *State) skipHSpace() int {
	for {
		c := getChar(s.reader, &s.pb)
		if c == ' ' || c == '\t' {
			continue
		}
		if c == '\n' {
			ungetChar(&s.pb, c)
		}
		return c
	}
}

// readDirectiveWord reads an alphabetic word of up to maxDirectiveWord
// characters, starting with the already-read character first. It stops on
// EOF, a non-alphabetic character, or having filled the buffer, pushing
// back the terminating character in the latter two cases.
func (s *State) readDirectiveWord(first int) []byte {
	buf := make([]byte, 0, maxDirectiveWord)
	c := first
	for {
		if c == EOF {
			return buf
		}
		if !isAlpha(c) {
			ungetChar(&s.pb, c)
			return buf
		}
		if len(buf) >= maxDirectiveWord {
			ungetChar(&s.pb, c)
			return buf
		}
		buf = append(buf, byte(c))
		c = getChar(s.reader, &s.pb)
	}
}

// readIdentifier reads an identifier (letters, digits, underscore) starting
// with the already-read character first, pushing back the terminator.
func (s *State) readIdentifier(first int) []byte {
	buf := []byte{byte(first)}
	for {
		c := getChar(s.reader, &s.pb)
		if c == EOF {
			return buf
		}
		if !isIdentCont(c) {
			ungetChar(&s.pb, c)
			return buf
		}
		buf = append(buf, byte(c))
	}
}

// pendingMacroTag is a #define/#undef tag awaiting emission: the emitter
// must wait for the directive to close (so the argument-list extractor can
// re-read the whole line) before it can compute a parameterized macro's
// signature.
type pendingMacroTag struct {
	name          string
	startPos      Pos
	line          int
	parameterized bool
	undef         bool
}

// beginDirective is called when '#' is read while the line is in an
// accepting position: it opens the directive and clears accept.
func (s *State) beginDirective() {
	s.directive.active = true
	s.directive.state = directiveHash
	s.directive.accept = false
}

// closeDirective resets directive state at the end of a directive line
// (called on newline, or at EOF). Any pending #define/#undef tag is
// flushed here: this is the earliest point the argument-list extractor can
// safely re-read the whole directive line.
func (s *State) closeDirective() {
	s.flushPendingDefine()
	s.directive.active = false
	s.directive.state = directiveNone
}

// dispatchDirectiveChar feeds one character to the directive sub-state
// machine. It is only called while directive.active is true. DEFINE/UNDEF/IF/PRAGMA are
// resolved synchronously by handleDirectiveWord's callees, each of which
// reads however many further characters it needs directly from the stream
// and leaves the sub-state back at directiveNone before returning -- so the
// only sub-states this ever observes here are directiveHash (acted on) and
// directiveNone (the rest of the line, ignored).
func (s *State) dispatchDirectiveChar(c int) {
	if s.directive.state == directiveHash {
		s.handleDirectiveWord(c)
	}
}

// handleDirectiveWord reads the directive keyword starting with c and
// dispatches on it.
func (s *State) handleDirectiveWord(c int) {
	word := string(s.readDirectiveWord(c))
	switch {
	case word == "define":
		s.directive.state = directiveDefine
		s.handleDefineOrUndef()
	case word == "undef":
		s.directive.state = directiveUndef
		s.handleDefineOrUndef()
	case word == "elif" || word == "else":
		ignoring := s.isIgnoreBranch()
		s.frame().Ignoring = ignoring
		if !ignoring && word == "else" {
			s.chooseBranch()
		}
		s.directive.state = directiveNone
	case word == "endif":
		s.popConditional()
		s.directive.state = directiveNone
	case word == "pragma":
		s.directive.state = directivePragma
		s.handlePragma()
		s.directive.state = directiveNone
	case strings.HasPrefix(word, "if"):
		s.directive.state = directiveIf
		s.handleIf()
	default:
		// Unknown directive: its body is discarded by virtue of staying
		// inside an active (suppressing-output) directive until newline.
		s.directive.state = directiveNone
	}
}

// handleIf reads the first non-space character after "#if"/"#ifdef"/
// "#ifndef" and pushes a new conditional frame: chosen iff that character
// isn't '0'. The core never evaluates #if expressions, nor distinguishes
// #ifdef/#ifndef identifiers from #if's "0" check -- all three directives
// share this same over-approximating heuristic.
func (s *State) handleIf() {
	c := s.skipHSpace()
	s.pushConditional(directiveIfChosen(c))
	s.directive.state = directiveNone
}

// handleDefineOrUndef reads the macro identifier following #define/#undef
// and records a pendingMacroTag to be resolved once the directive closes.
// #undef is treated identically to #define here: it emits a tag too, and
// differs only in how the macro table is updated.
func (s *State) handleDefineOrUndef() {
	for {
		pos := s.logicalPos()
		c := getChar(s.reader, &s.pb)
		switch {
		case c == ' ' || c == '\t':
			continue
		case c == '\n':
			ungetChar(&s.pb, c)
			s.directive.state = directiveNone
			return
		case c == EOF:
			s.directive.state = directiveNone
			return
		case isIdentStart(c):
			name := s.readIdentifier(c)
			parameterized := false
			if n := getChar(s.reader, &s.pb); n != EOF {
				if n == '(' {
					parameterized = true
				}
				ungetChar(&s.pb, n)
			}
			s.directive.pendingTag = &pendingMacroTag{
				name:          string(name),
				startPos:      pos,
				line:          s.cursorLine(),
				parameterized: parameterized,
				undef:         s.directive.state == directiveUndef,
			}
			s.directive.state = directiveNone
			return
		default:
			s.directive.state = directiveNone
			return
		}
	}
}

// handlePragma recognizes `#pragma weak NAME` and emits a macro tag for
// NAME; any other pragma is discarded (its body simply stays suppressed
// until the directive closes at the next newline).
func (s *State) handlePragma() {
	c := s.skipHSpace()
	if c == '\n' || c == EOF {
		return
	}
	word := s.readDirectiveWord(c)
	if string(word) != "weak" {
		return
	}

	c2 := s.skipHSpace()
	if c2 == '\n' || c2 == EOF || !isIdentStart(c2) {
		return
	}
	name := s.readIdentifier(c2)
	s.emitMacroTag(string(name), "", s.cursorLine())
}
