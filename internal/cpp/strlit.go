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

// skipString consumes a string literal body (the opening quote has already
// been read) up to and including the closing unescaped '"', and returns
// StringSymbol. If ignoreBackslash is true (verbatim `@"..."` strings),
// backslash has no escaping meaning and the scan ends at the first '"'.
func (s *State) skipString(ignoreBackslash bool) int {
	for {
		c := getChar(s.reader, &s.pb)
		switch c {
		case EOF:
			return EOF
		case '"':
			return StringSymbol
		case '\\':
			if !ignoreBackslash {
				if getChar(s.reader, &s.pb) == EOF {
					return EOF
				}
			}
		}
	}
}
