// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import "sync"

// ATN represents the immutable lexer ATN graph compiled from a grammar:
// states, transitions, per-mode start states, rule stop states, and the
// rule→tokenType map. Grammar compilation and serialization are external
// collaborators (spec.md §1); callers build an ATN with NewATN and
// AddState/AddMode/SetRuleToTokenType, then never mutate it again.
//
// ATN is read-only from the simulator's point of view, but a single ATN
// may be shared across many simulator/DFA pairs running on different
// goroutines (spec.md §5). The lookup methods take no lock; the mutex only
// serializes nextTokensWithinRule, which fills each state's next-token
// cache lazily.
type ATN struct {
	// states is every ATN state, indexed by state number.
	states []ATNState

	// modeToStartState is the per-mode lexer start state, indexed by mode
	// number; DEFAULT_MODE is index 0.
	modeToStartState []*TokensStartState

	modeNameToIndex map[string]int

	// ruleToStartState maps rule index to that rule's ATN start state.
	ruleToStartState []*RuleStartState

	// ruleToStopState maps rule index to that rule's ATN stop state.
	ruleToStopState []*RuleStopState

	// ruleToTokenType maps rule index to the token type it produces.
	ruleToTokenType []int

	// lexerActions is indexed by ActionTransition.ActionIndex.
	lexerActions []LexerAction

	maxTokenType int

	mu sync.Mutex
}

// NewATN returns an empty ATN ready to be populated by a grammar loader.
func NewATN(maxTokenType int) *ATN {
	return &ATN{
		maxTokenType:    maxTokenType,
		modeNameToIndex: make(map[string]int),
	}
}

// AddState appends state to the graph, assigning it the next state
// number.
func (a *ATN) AddState(state ATNState) {
	if state != nil {
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

// GetState returns the state with the given number; panics if out of
// range (spec.md §7 class 4).
func (a *ATN) GetState(stateNumber int) ATNState {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic("lexatn: invalid ATN state number")
	}
	return a.states[stateNumber]
}

// AddMode registers start as the start state of a new mode and returns
// that mode's index. If name is non-empty it can later be resolved via
// ModeByName.
func (a *ATN) AddMode(name string, start *TokensStartState) int {
	idx := len(a.modeToStartState)
	a.modeToStartState = append(a.modeToStartState, start)
	if name != "" {
		a.modeNameToIndex[name] = idx
	}
	return idx
}

// ModeByName resolves a grammar-declared mode name to its integer index;
// ok is false if no such mode was registered (supplemented convenience,
// SPEC_FULL.md).
func (a *ATN) ModeByName(name string) (idx int, ok bool) {
	idx, ok = a.modeNameToIndex[name]
	return
}

// ModeStartState returns the per-mode lexer start state (§4.G.3); panics
// if mode is out of range.
func (a *ATN) ModeStartState(mode int) *TokensStartState {
	if mode < 0 || mode >= len(a.modeToStartState) {
		panic("lexatn: invalid lexer mode")
	}
	return a.modeToStartState[mode]
}

// NumModes returns how many modes were registered.
func (a *ATN) NumModes() int {
	return len(a.modeToStartState)
}

// SetRuleToStartState installs the rule index → start state map built by
// the grammar loader.
func (a *ATN) SetRuleToStartState(starts []*RuleStartState) {
	a.ruleToStartState = starts
}

// SetRuleToStopState installs the rule index → stop state map built by
// the grammar loader.
func (a *ATN) SetRuleToStopState(stops []*RuleStopState) {
	a.ruleToStopState = stops
}

// SetRuleToTokenType installs the rule index → token type map (§3).
func (a *ATN) SetRuleToTokenType(m []int) {
	a.ruleToTokenType = m
}

// TokenTypeForRule returns the token type produced by rule, or
// InvalidTokenType if the rule index has no mapping.
func (a *ATN) TokenTypeForRule(rule int) int {
	if rule < 0 || rule >= len(a.ruleToTokenType) {
		return InvalidTokenType
	}
	return a.ruleToTokenType[rule]
}

// GetRuleToStartState returns the start state of the given rule.
func (a *ATN) GetRuleToStartState(index int) *RuleStartState {
	return a.ruleToStartState[index]
}

// GetRuleToStopState returns the stop state of the given rule.
func (a *ATN) GetRuleToStopState(index int) *RuleStopState {
	return a.ruleToStopState[index]
}

// SetLexerActions installs the action table referenced by
// ActionTransition.ActionIndex.
func (a *ATN) SetLexerActions(actions []LexerAction) {
	a.lexerActions = actions
}

// LexerAction returns the action at index i.
func (a *ATN) LexerAction(i int) LexerAction {
	return a.lexerActions[i]
}

// GetMaxTokenType returns the largest token type the grammar can produce.
func (a *ATN) GetMaxTokenType() int {
	return a.maxTokenType
}

// GetExpectedTokens computes the set of input symbols that could follow
// ATN state stateNumber given callStack, the chain of invoking states a
// lexer rule was entered through via Rule transitions (outermost first).
// A nil/empty callStack restricts the answer to what is reachable without
// leaving the rule containing stateNumber. This is the lexer-only
// specialization of the upstream runtime's getExpectedTokens, which walks
// a full parser RuleContext; a lexer ATN only ever has a flat stack of
// invoking states to walk instead (spec.md §4.B).
func (a *ATN) GetExpectedTokens(stateNumber int, callStack []int) *IntervalSet {
	s := a.GetState(stateNumber)
	following := a.nextTokensWithinRule(s)

	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()
	expected.addSet(following)
	expected.removeOne(TokenEpsilon)

	for i := len(callStack) - 1; i >= 0 && following.Contains(TokenEpsilon); i-- {
		invoking := a.GetState(callStack[i])
		rt, ok := invoking.GetTransitions()[0].(*RuleTransition)
		if !ok {
			break
		}
		following = a.nextTokensWithinRule(rt.followState)
		expected.addSet(following)
		expected.removeOne(TokenEpsilon)
	}

	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}
	return expected
}

// nextTokensWithinRule computes (and caches on s) the set of code points
// reachable from s by closure alone, staying inside s's rule. TokenEpsilon
// is included if the rule's stop state is reachable.
func (a *ATN) nextTokensWithinRule(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	if cached := s.GetNextTokenWithinRule(); cached != nil {
		return cached
	}
	seen := map[int]bool{}
	iset := NewIntervalSet()
	a.reachableWithinRule(s, seen, iset)
	iset.Freeze()
	s.SetNextTokenWithinRule(iset)
	return iset
}

func (a *ATN) reachableWithinRule(s ATNState, seen map[int]bool, out *IntervalSet) {
	if seen[s.GetStateNumber()] {
		return
	}
	seen[s.GetStateNumber()] = true

	if _, ok := s.(*RuleStopState); ok {
		out.AddOne(TokenEpsilon)
		return
	}

	for _, t := range s.GetTransitions() {
		if t.IsEpsilon() {
			if rt, ok := t.(*RuleTransition); ok {
				// The callee completing its rule means the call returns,
				// not that s's own rule can end here: explore the callee's
				// first-set, but continue past the call via followState
				// exactly as GetExpectedTokens' outer loop does.
				callee := NewIntervalSet()
				a.reachableWithinRule(rt.getTarget(), seen, callee)
				callee.removeOne(TokenEpsilon)
				out.addSet(callee)
				a.reachableWithinRule(rt.followState, seen, out)
				continue
			}
			a.reachableWithinRule(t.getTarget(), seen, out)
			continue
		}
		label := t.GetLabel()
		if label != nil {
			out.addSet(label)
		}
	}
}
