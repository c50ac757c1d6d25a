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

// Each skipper in this file is called right after the opening delimiter has
// already been consumed from the stream. They all return a single space,
// the character that replaces the whole comment in the filtered output, or
// EOF if the comment runs off the end of the input (no error is raised, the
// driver just returns EOF to its own caller).

// skipCComment consumes up to and including a closing "*/".
func (s *State) skipCComment() int {
	for {
		c := getChar(s.reader, &s.pb)
		if c == EOF {
			return EOF
		}
		if c == '*' {
			c2 := getChar(s.reader, &s.pb)
			if c2 == '/' {
				return ' '
			}
			if c2 == EOF {
				return EOF
			}
			ungetChar(&s.pb, c2)
		}
	}
}

// skipCppComment consumes to the end of the line. A backslash escapes the
// following character, so a backslash-newline continues the comment onto
// the next line rather than ending it. The terminating newline is not part
// of the comment: it is pushed back so the driver still sees it (and sets
// the directive-accepting flag for the next line).
func (s *State) skipCppComment() int {
	for {
		c := getChar(s.reader, &s.pb)
		switch c {
		case EOF:
			return EOF
		case '\n':
			s.reader.UnreadByte(byte(c))
			return ' '
		case '\\':
			if n := getChar(s.reader, &s.pb); n == EOF {
				return EOF
			}
		}
	}
}

// skipDComment consumes up to and including a closing "+/". Nested D
// comments (/+ /+ +/ +/) are not matched; the scan ends at the first "+/".
func (s *State) skipDComment() int {
	for {
		c := getChar(s.reader, &s.pb)
		if c == EOF {
			return EOF
		}
		if c == '+' {
			c2 := getChar(s.reader, &s.pb)
			if c2 == '/' {
				return ' '
			}
			if c2 == EOF {
				return EOF
			}
			ungetChar(&s.pb, c2)
		}
	}
}
