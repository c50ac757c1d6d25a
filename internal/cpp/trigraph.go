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

// foldTrigraph is called having already consumed a leading '?' from the
// stream. It reports the canonical character a "??X" trigraph maps to, and
// whether a trigraph was actually found. On a partial or failed match,
// every character consumed while looking (up to two: the second '?' and
// whatever followed it) is pushed back in reverse order.
func (s *State) foldTrigraph() (rune int, ok bool) {
	c2 := getChar(s.reader, &s.pb)
	if c2 != '?' {
		if c2 != EOF {
			s.reader.UnreadByte(byte(c2))
		}
		return 0, false
	}

	c3 := getChar(s.reader, &s.pb)
	switch c3 {
	case '(':
		return '[', true
	case ')':
		return ']', true
	case '<':
		return '{', true
	case '>':
		return '}', true
	case '/':
		return '\\', true
	case '\'':
		return '^', true
	case '!':
		return '|', true
	case '-':
		return '~', true
	case '=':
		return '#', true
	default:
		if c3 != EOF {
			s.reader.UnreadByte(byte(c3))
		}
		s.reader.UnreadByte(byte(c2))
		return 0, false
	}
}

// foldDigraphLess handles a leading '<': "<:" folds to '[', "<%" folds to
// '{'. Anything else is pushed back unconsumed.
func (s *State) foldDigraphLess() (rune int, ok bool) {
	c2 := getChar(s.reader, &s.pb)
	switch c2 {
	case ':':
		return '[', true
	case '%':
		return '{', true
	default:
		if c2 != EOF {
			s.reader.UnreadByte(byte(c2))
		}
		return 0, false
	}
}

// foldDigraphColon handles a leading ':': ":>" folds to ']'.
func (s *State) foldDigraphColon() (rune int, ok bool) {
	c2 := getChar(s.reader, &s.pb)
	if c2 == '>' {
		return ']', true
	}
	if c2 != EOF {
		s.reader.UnreadByte(byte(c2))
	}
	return 0, false
}

// foldDigraphPercent handles a leading '%': "%:" folds to '#' and "%>"
// folds to '}'. "%:%:" is never matched as a unit; it arises as two
// successive "%:" transductions yielding "##".
func (s *State) foldDigraphPercent() (rune int, ok bool) {
	c2 := getChar(s.reader, &s.pb)
	switch c2 {
	case ':':
		return '#', true
	case '>':
		return '}', true
	default:
		if c2 != EOF {
			s.reader.UnreadByte(byte(c2))
		}
		return 0, false
	}
}
