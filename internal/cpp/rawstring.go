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

// maxRawStringDelimiter is the 16-character cap on a R"delim(...)delim"
// delimiter.
const maxRawStringDelimiter = 16

// isRawDelimiterChar reports whether c may appear in a raw string delimiter:
// anything but space, form feed, newline, carriage return, tab, vertical
// tab, '(', ')', or '\'.
func isRawDelimiterChar(c int) bool {
	switch c {
	case ' ', '\f', '\n', '\r', '\t', '\v', '(', ')', '\\', EOF:
		return false
	default:
		return true
	}
}

// skipRawString consumes a R"delim(...)delim" literal, called right after
// the `R"` prefix has been read from the stream. It requires the session's
// pushback buffer to be empty on entry (true of every driver call site,
// since raw strings are only recognized at the top of the driver loop) so
// that ByteReader.Position/Seek can be used to backtrack past a body
// candidate that turns out not to match the delimiter -- the only way to
// undo an arbitrary-length lookahead within the two-slot pushback budget.
func (s *State) skipRawString() int {
	var delim []byte
	for {
		c := getChar(s.reader, &s.pb)
		if c == '(' {
			break
		}
		if !isRawDelimiterChar(c) || len(delim) >= maxRawStringDelimiter {
			// No '(' and no valid delimiter char: fall back to a plain
			// string scan. The bytes gathered so far (and
			// c, if it's not EOF) are already consumed; feed them back
			// through the ordinary string terminator search. A '"' among
			// them closes the string there, and the bytes read past it
			// are returned to the reader.
			for i, b := range delim {
				if b == '"' {
					back := len(delim) - i - 1
					if c != EOF {
						back++
					}
					s.reader.Seek(s.reader.Position() - Pos(back))
					return StringSymbol
				}
			}
			if c == EOF {
				return EOF
			}
			return s.resumeStringScan(c)
		}
		delim = append(delim, byte(c))
	}
	return s.scanRawStringBody(delim)
}

// resumeStringScan continues a standard (backslash-escaping) string scan
// when a raw-string delimiter turned out invalid, starting from a character
// already read from the stream.
func (s *State) resumeStringScan(c int) int {
	for {
		switch c {
		case EOF:
			return EOF
		case '"':
			return StringSymbol
		case '\\':
			if getChar(s.reader, &s.pb) == EOF {
				return EOF
			}
		}
		c = getChar(s.reader, &s.pb)
	}
}

// scanRawStringBody scans forward for a ')' followed by delim and a closing
// '"'. On a false match it seeks back to just past the ')' and keeps
// looking, so overlapping candidate terminators are found correctly.
func (s *State) scanRawStringBody(delim []byte) int {
	for {
		c := getChar(s.reader, &s.pb)
		if c == EOF {
			return EOF
		}
		if c != ')' {
			continue
		}

		resumeAt := s.reader.Position()
		if matchesRawDelimiter(s.reader, delim) {
			return StringSymbol
		}
		s.reader.Seek(resumeAt)
	}
}

// matchesRawDelimiter reads len(delim)+1 bytes from r and reports whether
// they equal delim followed by a closing quote. It always consumes exactly
// that many bytes (or stops at EOF), leaving the reader positioned right
// after the match on success; the caller is responsible for seeking back
// on failure.
func matchesRawDelimiter(r ByteReader, delim []byte) bool {
	for _, want := range delim {
		if got := r.ReadByte(); got != int(want) {
			return false
		}
	}
	return r.ReadByte() == '"'
}
