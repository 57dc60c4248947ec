// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// This file hand-assembles small lexer ATNs the way a deserializer would
// from generated grammar tables, for the end-to-end scenarios of
// spec.md §8. There is no grammar compiler in scope (spec.md §1), so
// tests build the graph directly with AddState/AddTransition.

func newState(atn *ATN) *BasicState {
	s := NewBasicState()
	atn.AddState(s)
	return s
}

// newLexerRule registers a rule producing tokenType, returning its start
// and stop states already linked into the ATN's rule tables.
func newLexerRule(atn *ATN, ruleIndex, tokenType int, ruleToStart []*RuleStartState, ruleToStop []*RuleStopState, ruleToTokenType []int) (*RuleStartState, *RuleStopState) {
	start := NewRuleStartState()
	start.SetRuleIndex(ruleIndex)
	atn.AddState(start)
	stop := NewRuleStopState()
	stop.SetRuleIndex(ruleIndex)
	atn.AddState(stop)
	ruleToStart[ruleIndex] = start
	ruleToStop[ruleIndex] = stop
	ruleToTokenType[ruleIndex] = tokenType
	return start, stop
}

// literalRule wires start -'l','i','t'-> ... -> stop for a fixed string.
func literalRule(atn *ATN, start ATNState, stop ATNState, text string) {
	cur := start
	runes := []rune(text)
	for i, r := range runes {
		var next ATNState
		if i == len(runes)-1 {
			next = stop
		} else {
			next = newState(atn)
		}
		cur.AddTransition(NewAtomTransition(next, int(r)))
		cur = next
	}
	if len(runes) == 0 {
		cur.AddTransition(NewEpsilonTransition(stop))
	}
}

// plusSetRule wires start into a one-or-more loop over set, ending at stop:
// start -eps-> loopTest -set-> matched -eps-> {loopTest, stop}
func plusSetRule(atn *ATN, start ATNState, stop ATNState, set *IntervalSet) {
	loopTest := newState(atn)
	matched := newState(atn)
	start.AddTransition(NewEpsilonTransition(loopTest))
	loopTest.AddTransition(NewSetTransition(matched, set))
	matched.AddTransition(NewEpsilonTransition(loopTest))
	matched.AddTransition(NewEpsilonTransition(stop))
}

// charRule wires start -cp-> stop for a single code point.
func charRule(atn *ATN, start ATNState, stop ATNState, cp int) {
	start.AddTransition(NewAtomTransition(stop, cp))
}
