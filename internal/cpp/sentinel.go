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

// The filtered character stream NextChar yields is nominally `int`: raw
// bytes 0..255, EOF, or one of the two sentinels below. None of the three
// can collide with a raw input byte.
const (
	// EOF marks the end of the input stream.
	EOF = -1

	// StringSymbol replaces any elided string or verbatim/raw string literal.
	StringSymbol = -2

	// CharSymbol replaces any elided character literal.
	CharSymbol = -3
)
