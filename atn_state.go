// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// ATN state-type tags, mirroring the upstream runtime's
// ATNState.*StateType constants. Only the kinds a lexer ATN actually uses
// are named; parser-only decision kinds (star/plus loop back, block end,
// etc.) collapse to StateBasic here since parser-side prediction is out
// of scope (spec.md §1 Non-goals).
const (
	StateInvalidType = iota
	StateBasic
	StateRuleStart
	StateTokenStart // per-mode lexer start state
	StateRuleStop
)

// ATNState is a single node of the ATN graph. States are immutable after
// the grammar is loaded (spec.md §3); the only field mutated post-load is
// the NextTokenWithinRule cache, filled lazily by ATN.nextTokensWithinRule.
type ATNState interface {
	GetStateNumber() int
	SetStateNumber(int)
	GetRuleIndex() int
	SetRuleIndex(int)
	GetTransitions() []Transition
	AddTransition(Transition)
	GetStateType() int
	OnlyHasEpsilonTransitions() bool
	GetNextTokenWithinRule() *IntervalSet
	SetNextTokenWithinRule(*IntervalSet)
}

// BaseATNState implements the fields shared by every concrete state kind.
type BaseATNState struct {
	stateNumber         int
	ruleIndex           int
	transitions         []Transition
	nextTokenWithinRule *IntervalSet
	epsilonOnly         bool
}

func (s *BaseATNState) GetStateNumber() int      { return s.stateNumber }
func (s *BaseATNState) SetStateNumber(n int)     { s.stateNumber = n }
func (s *BaseATNState) GetRuleIndex() int        { return s.ruleIndex }
func (s *BaseATNState) SetRuleIndex(r int)       { s.ruleIndex = r }
func (s *BaseATNState) GetTransitions() []Transition {
	return s.transitions
}

// AddTransition appends t and recomputes whether the state is
// epsilon-only, which the closure algorithm (§4.G.6) uses to decide
// whether to add a config directly or keep recursing.
func (s *BaseATNState) AddTransition(t Transition) {
	s.transitions = append(s.transitions, t)
	if len(s.transitions) == 1 {
		s.epsilonOnly = t.IsEpsilon()
	} else if !t.IsEpsilon() {
		s.epsilonOnly = false
	}
}

func (s *BaseATNState) OnlyHasEpsilonTransitions() bool {
	return s.epsilonOnly && len(s.transitions) > 0
}

func (s *BaseATNState) GetNextTokenWithinRule() *IntervalSet {
	return s.nextTokenWithinRule
}

func (s *BaseATNState) SetNextTokenWithinRule(iset *IntervalSet) {
	s.nextTokenWithinRule = iset
}

// BasicState is an ordinary ATN node: the interior of a rule body between
// two transitions.
type BasicState struct{ BaseATNState }

func NewBasicState() *BasicState { return &BasicState{} }

func (s *BasicState) GetStateType() int { return StateBasic }

// RuleStartState is the entry point of a rule's ATN subgraph.
type RuleStartState struct {
	BaseATNState
}

func NewRuleStartState() *RuleStartState { return &RuleStartState{} }

func (s *RuleStartState) GetStateType() int { return StateRuleStart }

// RuleStopState is the exit point of a rule's ATN subgraph; closure
// (§4.G.6) pops the prediction-context return state here to resume the
// caller.
type RuleStopState struct{ BaseATNState }

func NewRuleStopState() *RuleStopState { return &RuleStopState{} }

func (s *RuleStopState) GetStateType() int { return StateRuleStop }

// TokensStartState is a per-mode lexer start state: computeStartState
// (§4.G.3) builds the initial config set from its outgoing transitions,
// one alt per transition in grammar source order.
type TokensStartState struct{ BaseATNState }

func NewTokensStartState() *TokensStartState { return &TokensStartState{} }

func (s *TokensStartState) GetStateType() int { return StateTokenStart }
