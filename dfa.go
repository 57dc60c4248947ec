// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DFA is the lazily-grown deterministic automaton for a single lexer mode
// (spec.md §3). States and edges are added monotonically during Match and
// never removed except by an explicit Clear; concurrent writers require
// external synchronization (spec.md §5).
type DFA struct {
	// S0 is the mode's start state, computed once on first use
	// (computeStartState, §4.G.3) and cached here. It may be nil if
	// closure found semantic context on the very first scan (§4.G.3) —
	// the caller must always recompute in that case.
	S0 *DFAState

	states map[uint64][]*DFAState // hash -> states with that hash

	nextStateNumber int
}

// NewDFA returns an empty per-mode DFA.
func NewDFA() *DFA {
	return &DFA{states: make(map[uint64][]*DFAState)}
}

// AddState interns configs by configuration-set identity: if an
// equivalent state already exists it is returned unchanged (and the
// caller's freshly-built state is discarded); otherwise the new state is
// numbered and stored (spec.md §3, §4.G.7).
func (d *DFA) AddState(s *DFAState) *DFAState {
	h := s.hash()
	for _, existing := range d.states[h] {
		if existing.equals(s) {
			return existing
		}
	}
	s.StateNumber = d.nextStateNumber
	d.nextStateNumber++
	d.states[h] = append(d.states[h], s)
	return s
}

// Clear resets the DFA to empty, as spec.md §3 allows via "clearDFA".
func (d *DFA) Clear() {
	d.S0 = nil
	d.states = make(map[uint64][]*DFAState)
	d.nextStateNumber = 0
}

// Len returns how many distinct states have been interned.
func (d *DFA) Len() int {
	n := 0
	for _, bucket := range d.states {
		n += len(bucket)
	}
	return n
}

// String renders a small diagnostic dump of the interned states. The
// hash-bucket keys are sorted first so two dumps of an unchanged DFA
// produce byte-identical output regardless of map iteration order.
func (d *DFA) String() string {
	buckets := maps.Keys(d.states)
	slices.Sort(buckets)

	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA{states=%d, buckets=[", d.Len())
	for i, h := range buckets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%d", h, len(d.states[h]))
	}
	sb.WriteString("]}")
	return sb.String()
}
