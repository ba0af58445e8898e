// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

// State is the parser's full side-channel context at a point in the
// token stream: the active [Mode] bits, a "transparent" mode mask that
// is inherited across pushes without needing to be repeated explicitly
// (used for modes like ModePreprocessorInactive that should stay active
// through nested constructs unless something specifically clears them),
// and the call stack of modes pushed so far.
//
// State is copied by value at push and restored by value at pop; there
// is deliberately no pointer aliasing between stack frames, so a
// half-finished nested parse can never corrupt its caller's state.
type State struct {
	Mode            Mode
	TransparentMode Mode
	CallStack       []Mode
}

// NewState returns a State with only ModeTopLevel active.
func NewState() State {
	return State{Mode: ModeTopLevel}
}

// Push returns a new State with add ORed into Mode (and into
// TransparentMode, so it survives further pushes), with the prior Mode
// recorded on CallStack.
func (s State) Push(add Mode) State {
	stack := make([]Mode, len(s.CallStack)+1)
	copy(stack, s.CallStack)
	stack[len(s.CallStack)] = s.Mode
	return State{
		Mode:            s.Mode.With(add),
		TransparentMode: s.TransparentMode.With(add),
		CallStack:       stack,
	}
}

// Pop returns the State with the top of CallStack restored as Mode, and
// reports whether the stack was non-empty (false means s was already at
// the top level; it is returned unchanged).
func (s State) Pop() (State, bool) {
	if len(s.CallStack) == 0 {
		return s, false
	}
	top := s.CallStack[len(s.CallStack)-1]
	return State{
		Mode:            top,
		TransparentMode: s.TransparentMode,
		CallStack:       s.CallStack[:len(s.CallStack)-1],
	}, true
}

// Depth returns the current call-stack depth.
func (s State) Depth() int { return len(s.CallStack) }

// AtTopLevel reports whether the call stack is empty, which a
// completed unit's final State must satisfy. A non-empty stack at end
// of input means the input was truncated: [Parser.Run] pops the
// remaining modes itself and marks the unit, rather than failing.
func (s State) AtTopLevel() bool { return len(s.CallStack) == 0 }
