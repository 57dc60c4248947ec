// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// Transition tags, reported by Transition.GetSerializationType. The
// simulator itself dispatches on the concrete transition type (a type
// switch in getEpsilonTarget).
const (
	TransitionEpsilon = iota + 1
	TransitionRange
	TransitionRule
	TransitionPredicate
	TransitionAtom
	TransitionAction
	TransitionSet
	TransitionNotSet
	TransitionPrecedence
)

// Transition is a single labeled edge of the ATN graph. Matches reports
// whether the transition consumes symbol (only meaningful for the
// consuming kinds: Atom/Range/Set/NotSet).
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	GetSerializationType() int
	IsEpsilon() bool
	Matches(symbol, minCP, maxCP int) bool
	GetLabel() *IntervalSet

	// IsNonGreedy marks the edge of a non-greedy decision (e.g. the
	// "keep consuming" branch of `.*?`) that a config must pass through
	// to become deprioritized once its alt has accepted (spec.md §4.G.5,
	// GLOSSARY "Non-greedy decision").
	IsNonGreedy() bool
}

// BaseTransition holds the target state common to every transition kind.
type BaseTransition struct {
	target    ATNState
	label     *IntervalSet
	nonGreedy bool
}

func (t *BaseTransition) getTarget() ATNState    { return t.target }
func (t *BaseTransition) setTarget(s ATNState)   { t.target = s }
func (t *BaseTransition) IsEpsilon() bool        { return false }
func (t *BaseTransition) GetLabel() *IntervalSet { return t.label }
func (t *BaseTransition) IsNonGreedy() bool      { return t.nonGreedy }

// MarkNonGreedy flags this transition as the continuation edge of a
// non-greedy decision; used by ATN construction, never by the simulator.
func (t *BaseTransition) MarkNonGreedy() { t.nonGreedy = true }

func (t *BaseTransition) Matches(int, int, int) bool {
	return false
}

// EpsilonTransition consumes no input; closure always follows it.
type EpsilonTransition struct{ BaseTransition }

func NewEpsilonTransition(target ATNState) *EpsilonTransition {
	return &EpsilonTransition{BaseTransition{target: target}}
}
func (t *EpsilonTransition) GetSerializationType() int { return TransitionEpsilon }
func (t *EpsilonTransition) IsEpsilon() bool            { return true }

// AtomTransition matches exactly one code point.
type AtomTransition struct {
	BaseTransition
	codePoint int
}

func NewAtomTransition(target ATNState, codePoint int) *AtomTransition {
	return &AtomTransition{BaseTransition{target: target, label: NewIntervalSet()}, codePoint}
}
func (t *AtomTransition) GetSerializationType() int { return TransitionAtom }
func (t *AtomTransition) Matches(symbol, _, _ int) bool {
	return symbol == t.codePoint
}
func (t *AtomTransition) GetLabel() *IntervalSet {
	s := NewIntervalSet()
	s.AddOne(t.codePoint)
	return s
}

// RangeTransition matches any code point in [lo, hi] inclusive.
type RangeTransition struct {
	BaseTransition
	lo, hi int
}

func NewRangeTransition(target ATNState, lo, hi int) *RangeTransition {
	return &RangeTransition{BaseTransition{target: target}, lo, hi}
}
func (t *RangeTransition) GetSerializationType() int { return TransitionRange }
func (t *RangeTransition) Matches(symbol, _, _ int) bool {
	return symbol >= t.lo && symbol <= t.hi
}
func (t *RangeTransition) GetLabel() *IntervalSet {
	s := NewIntervalSet()
	s.Add(t.lo, t.hi)
	return s
}

// SetTransition matches any code point contained in an arbitrary
// IntervalSet (used for character classes such as [a-zA-Z_]).
type SetTransition struct {
	BaseTransition
	set *IntervalSet
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSet()
	}
	return &SetTransition{BaseTransition{target: target, label: set}, set}
}
func (t *SetTransition) GetSerializationType() int { return TransitionSet }
func (t *SetTransition) Matches(symbol, minCP, maxCP int) bool {
	return symbol >= minCP && symbol <= maxCP && t.set.Contains(symbol)
}
func (t *SetTransition) GetLabel() *IntervalSet { return t.set }

// NotSetTransition matches any code point in [minCP, maxCP] not contained
// in the set (the negated character class form, e.g. ~[a-z]).
type NotSetTransition struct {
	SetTransition
}

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	if set == nil {
		set = NewIntervalSet()
	}
	return &NotSetTransition{SetTransition{BaseTransition{target: target, label: set}, set}}
}
func (t *NotSetTransition) GetSerializationType() int { return TransitionNotSet }
func (t *NotSetTransition) Matches(symbol, minCP, maxCP int) bool {
	return symbol >= minCP && symbol <= maxCP && !t.set.Contains(symbol)
}

// RuleTransition invokes a referenced rule: the simulator pushes
// FollowState onto the prediction-context stack and resumes at Target,
// the referenced rule's start state.
type RuleTransition struct {
	BaseTransition
	followState ATNState
	ruleIndex   int
}

func NewRuleTransition(ruleStart ATNState, ruleIndex int, followState ATNState) *RuleTransition {
	return &RuleTransition{BaseTransition{target: ruleStart}, followState, ruleIndex}
}
func (t *RuleTransition) GetSerializationType() int { return TransitionRule }
func (t *RuleTransition) IsEpsilon() bool             { return true }

// PredicateTransition guards its target on a user semantic predicate,
// evaluated during closure (§4.G.9); the evaluation is speculative when
// closure runs from reach and not when it builds the start state.
type PredicateTransition struct {
	BaseTransition
	RuleIndex       int
	PredIndex       int
	IsCtxDependent  bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{BaseTransition{target: target}, ruleIndex, predIndex, isCtxDependent}
}
func (t *PredicateTransition) GetSerializationType() int { return TransitionPredicate }
func (t *PredicateTransition) IsEpsilon() bool             { return true }
func (t *PredicateTransition) Matches(int, int, int) bool  { return false }

// ActionTransition fires a user lexer action (§4.G.8) by index into
// ATN.lexerActions.
type ActionTransition struct {
	BaseTransition
	RuleIndex   int
	ActionIndex int
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int) *ActionTransition {
	return &ActionTransition{BaseTransition{target: target}, ruleIndex, actionIndex}
}
func (t *ActionTransition) GetSerializationType() int { return TransitionAction }
func (t *ActionTransition) IsEpsilon() bool             { return true }

// PrecedenceTransition exists only in parser ATNs; encountering one while
// simulating a lexer is a malformed-ATN fatal condition (spec.md §7
// class 3).
type PrecedenceTransition struct {
	BaseTransition
	precedence int
}

func NewPrecedenceTransition(target ATNState, precedence int) *PrecedenceTransition {
	return &PrecedenceTransition{BaseTransition{target: target}, precedence}
}
func (t *PrecedenceTransition) GetSerializationType() int { return TransitionPrecedence }
func (t *PrecedenceTransition) IsEpsilon() bool             { return true }
