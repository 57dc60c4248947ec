// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import "testing"

func TestLexerActionExecutorAppendDoesNotMutateOriginal(t *testing.T) {
	base := NewLexerActionExecutor([]LexerAction{NewSkipAction()})
	extended := Append(base, NewMoreAction())

	if base.equals(extended) {
		t.Fatal("Append must return a distinct executor, not mutate base in place")
	}
	if len(base.actions) != 1 {
		t.Fatalf("base executor mutated: now has %d actions", len(base.actions))
	}
	if len(extended.actions) != 2 {
		t.Fatalf("extended executor should have 2 actions, got %d", len(extended.actions))
	}
}

func TestLexerActionExecutorEqualsAndHash(t *testing.T) {
	a := NewLexerActionExecutor([]LexerAction{NewSkipAction()})
	b := NewLexerActionExecutor([]LexerAction{NewSkipAction()})
	if a.hash() != b.hash() {
		t.Fatal("two executors over equivalent action lists should hash the same")
	}
}

func TestLexerActionExecutorFixOffsetRebindsPositionDependentOnly(t *testing.T) {
	skip := NewSkipAction()
	custom := NewLexerCustomAction(0, 0)
	exec := NewLexerActionExecutor([]LexerAction{skip, custom})

	fixed := exec.FixOffsetBeforeMatch(3)
	if fixed == exec {
		t.Fatal("FixOffsetBeforeMatch should return a new executor when a position-dependent action exists")
	}
	if fixed.actions[0] != skip {
		t.Fatal("non-position-dependent actions must be carried over unchanged")
	}
	if _, ok := fixed.actions[1].(*lexerIndexedCustomAction); !ok {
		t.Fatalf("position-dependent action should be rebound to lexerIndexedCustomAction, got %T", fixed.actions[1])
	}

	again := fixed.FixOffsetBeforeMatch(3)
	if again != fixed {
		t.Fatal("fixing an already-fixed executor a second time should be a no-op")
	}
}

func TestLexerActionExecutorNilIsSafe(t *testing.T) {
	var e *LexerActionExecutor
	if e.hash() != 0 {
		t.Fatal("nil executor should hash to 0")
	}
	if !e.equals(nil) {
		t.Fatal("nil executor should equal nil")
	}
	e.Execute(nil, 0) // must not panic
}
