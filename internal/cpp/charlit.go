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

func isVeraBaseSpecifier(c int) bool {
	switch c {
	case 'd', 'D', 'h', 'H', 'o', 'O', 'b', 'B':
		return true
	default:
		return false
	}
}

func isAlnum(c int) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// skipCharacter consumes a character literal body (the opening quote has
// already been read) and returns CharSymbol, or EOF on a premature end of
// input. It is called after "'" has been consumed from the stream.
//
// Vera allows a character literal to instead be a based integer constant
// such as 'h1F or 'b101: if the very first character is one of D/H/O/B
// (case-insensitive), the literal has no closing quote at all. In that
// case we read the run of following alphanumerics and push back the first
// character that isn't one.
func (s *State) skipCharacter() int {
	c := getChar(s.reader, &s.pb)

	if isVeraBaseSpecifier(c) {
		for {
			next := getChar(s.reader, &s.pb)
			if next == EOF {
				break
			}
			if !isAlnum(next) {
				s.reader.UnreadByte(byte(next))
				break
			}
		}
		return CharSymbol
	}

	for {
		switch c {
		case EOF:
			return EOF
		case '\'':
			return CharSymbol
		case '\n':
			// Char literals don't span lines; treat the newline as not
			// belonging to the literal and let the driver rescan it.
			s.reader.UnreadByte(byte(c))
			return CharSymbol
		case '\\':
			if getChar(s.reader, &s.pb) == EOF {
				return EOF
			}
		}
		c = getChar(s.reader, &s.pb)
	}
}
