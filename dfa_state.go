// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// DFAState is one interned node of a per-mode DFA: the frozen ATN config
// set it represents, its bounded edge table, and — if it is an accept
// state — the token type it commits to and the executor that must run
// when it wins (spec.md §3).
type DFAState struct {
	configs *ATNConfigSet

	// edges is indexed by (codePoint - MinDFAEdge); only code points in
	// [MinDFAEdge, MaxDFAEdge] ever get a cached edge (spec.md §6).
	edges [MaxDFAEdge - MinDFAEdge + 1]*DFAState

	IsAcceptState bool
	// Prediction is the token type this state commits to when it is the
	// winning accept state.
	Prediction          int
	LexerActionExecutor *LexerActionExecutor

	StateNumber int
}

// NewDFAState returns a new, not-yet-numbered state wrapping configs.
func NewDFAState(configs *ATNConfigSet) *DFAState {
	return &DFAState{configs: configs, Prediction: InvalidTokenType}
}

// GetConfigs returns the frozen config set this state represents.
func (d *DFAState) GetConfigs() *ATNConfigSet { return d.configs }

// edgeAt returns the cached transition on code point t, or nil if t is
// out of the cacheable range or has no edge yet.
func (d *DFAState) edgeAt(t int) *DFAState {
	if t < MinDFAEdge || t > MaxDFAEdge {
		return nil
	}
	return d.edges[t-MinDFAEdge]
}

// setEdge installs target as the transition on code point t; a no-op
// outside the cacheable range (the ATN fallback always applies there).
func (d *DFAState) setEdge(t int, target *DFAState) {
	if t < MinDFAEdge || t > MaxDFAEdge {
		return
	}
	d.edges[t-MinDFAEdge] = target
}

// errorDFAState is the shared sentinel meaning "this config/edge leads to
// a dead end"; distinguishing it from nil lets execATN memoize dead ends
// instead of recomputing reach on every repeat scan (spec.md §4.G.7).
var errorDFAState = &DFAState{configs: NewATNConfigSet().Freeze(), Prediction: InvalidTokenType}

func (d *DFAState) hash() uint64 {
	if d.configs == nil {
		return 0
	}
	return d.configs.hash()
}

func (d *DFAState) equals(o *DFAState) bool {
	if d == o {
		return true
	}
	return d.configs.equals(o.configs)
}
