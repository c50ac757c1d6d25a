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

// ConditionalFrame is one level of #if...#endif nesting and its
// branch-selection flags.
type ConditionalFrame struct {
	// IgnoreAllBranches is true when the enclosing frame was already
	// suppressing at entry, so every branch of this conditional is
	// suppressed regardless of its own condition.
	IgnoreAllBranches bool
	// SingleBranch is true when resolveRequired was set at entry, or became
	// set mid-conditional: once true, at most one branch of this
	// conditional may ever be followed.
	SingleBranch bool
	// BranchChosen records whether some branch of this conditional has
	// already been accepted.
	BranchChosen bool
	// Ignoring is whether bytes in the *current* branch are being
	// suppressed right now.
	Ignoring bool
}

// frame returns the currently active conditional frame.
func (s *State) frame() *ConditionalFrame {
	return &s.directive.ifdef[s.directive.nestLevel]
}

// pushConditional opens a new conditional frame for a `#if`/`#ifdef`/
// `#ifndef` directive whose first branch was chosen iff firstBranchChosen.
// If the stack is already at its cap, the push is silently dropped: the
// directive is still parsed, but no frame is opened, and a later #endif
// will instead pop whatever frame happens to be active. The extractor must
// never fail on malformed input, so over-deep nesting degrades this way
// rather than erroring.
func (s *State) pushConditional(firstBranchChosen bool) {
	parent := s.frame()
	if s.directive.nestLevel >= maxNestLevel {
		return
	}
	s.directive.nestLevel++
	f := s.frame()
	*f = ConditionalFrame{
		IgnoreAllBranches: parent.Ignoring,
		SingleBranch:      s.resolveRequired,
		BranchChosen:      firstBranchChosen,
	}
	f.Ignoring = f.IgnoreAllBranches ||
		(!firstBranchChosen && !s.braceFormat && (f.SingleBranch || !s.opts.IF0))
}

// isIgnoreBranch computes whether the *next* branch of the current
// conditional (an #elif or #else) should be suppressed.
func (s *State) isIgnoreBranch() bool {
	f := s.frame()
	if s.resolveRequired && !s.braceFormat {
		f.SingleBranch = true
	}
	return f.IgnoreAllBranches || (f.BranchChosen && f.SingleBranch)
}

// chooseBranch marks the current conditional's branch as chosen, unless the
// session is in brace-format mode.
func (s *State) chooseBranch() {
	if !s.braceFormat {
		f := s.frame()
		f.BranchChosen = f.SingleBranch || s.resolveRequired
	}
}

// popConditional closes the innermost conditional frame, clamping at 0.
func (s *State) popConditional() {
	if s.directive.nestLevel > 0 {
		s.directive.nestLevel--
	}
}

// directiveIfChosen interprets the first non-space byte c after `#if...` as
// the classic "#if 0" heuristic: the branch is chosen iff c is not '0'.
// There is no real expression evaluation anywhere in this package; this is
// the only branch-selection mechanism.
func directiveIfChosen(c int) bool {
	return c != '0'
}
