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

import "fmt"

// Pos identifies a byte offset into the file a ByteReader is reading from.
// State records it, replays it through ByteReader.Seek, and subtracts two
// of them to measure a span or to step back over pushed-back bytes.
type Pos int64

// Cursor is a human-readable line/column position; emitted tags use it for
// their line numbers. Line and Column are 1-based.
type Cursor struct {
	Line, Column int
}

// CursorZero is the position at the start of a file.
var CursorZero = Cursor{Line: 1, Column: 1}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// Advanced returns the cursor position after consuming a single byte b.
func (c Cursor) Advanced(b byte) Cursor {
	if b == '\n' {
		c.Line++
		c.Column = 1
	} else {
		c.Column++
	}
	return c
}
