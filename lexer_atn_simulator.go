// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// simState is the ephemeral accept record captured at every accept state
// passed during a single Match, supporting zero-length tokens and the
// "commit to the latest accept" longest-match rule (spec.md §3, §4.G.2).
type simState struct {
	index    int
	line     int
	charPos  int
	dfaState *DFAState
}

func (s *simState) reset() { *s = simState{} }

// LexerATNSimulator is the heart of the package: it walks the per-mode
// DFA where possible and falls back to simulating the ATN (closure/reach)
// to grow that DFA on demand (spec.md §4.G).
type LexerATNSimulator struct {
	atn                *ATN
	dfa                []*DFA
	sharedContextCache *PredictionContextCache

	// lexer is the owning driver; needed so deferred lexer actions
	// (Skip/More/PushMode/...) and user Sempred/Action callbacks have
	// somewhere to land (spec.md §4.H, §6).
	lexer *Lexer

	mode       int
	startIndex int

	// Line and CharPositionInLine are the simulator's authoritative
	// position; accept() overwrites them when it rewinds input to the
	// committed accept point (spec.md §4.H "line/column update").
	Line              int
	CharPositionInLine int

	prevAccept simState
}

// NewLexerATNSimulator returns a simulator with one empty DFA per mode
// declared in atn.
func NewLexerATNSimulator(atn *ATN, lexer *Lexer, sharedContextCache *PredictionContextCache) *LexerATNSimulator {
	if sharedContextCache == nil {
		sharedContextCache = NewPredictionContextCache()
	}
	dfas := make([]*DFA, atn.NumModes())
	for i := range dfas {
		dfas[i] = NewDFA()
	}
	return &LexerATNSimulator{
		atn:                atn,
		dfa:                dfas,
		sharedContextCache: sharedContextCache,
		lexer:              lexer,
		Line:               1,
		CharPositionInLine: 0,
	}
}

// ClearDFA discards every interned state across all modes (spec.md §3
// "Lifecycles").
func (l *LexerATNSimulator) ClearDFA() {
	for _, d := range l.dfa {
		d.Clear()
	}
}

// Match implements spec.md §4.G.1: input must already be positioned at
// the candidate token start. On success it returns the winning token
// type with input advanced one past the matched text and Line/
// CharPositionInLine updated to the accept point; on failure it returns a
// *LexerNoViableAltException with input left one past the last consumed
// character.
func (l *LexerATNSimulator) Match(input CharStream, mode int) (int, error) {
	l.mode = mode
	mk := openMark(input)
	defer mk.release()

	l.startIndex = input.Index()
	l.prevAccept.reset()

	if mode < 0 || mode >= len(l.dfa) {
		panic("lexatn: invalid lexer mode")
	}
	dfa := l.dfa[mode]
	if dfa.S0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, dfa.S0)
}

// matchATN handles the first use of a mode: it builds the start
// configuration set from scratch, interns it as the mode's DFA s0 unless
// closure found semantic context, and then runs execATN from there
// (spec.md §4.G.3).
func (l *LexerATNSimulator) matchATN(input CharStream) (int, error) {
	s0Closure := l.computeStartState(input, l.mode)
	suppressEdge := s0Closure.HasSemanticContext
	s0Closure.HasSemanticContext = false

	next := l.addDFAState(s0Closure)
	if !suppressEdge {
		l.dfa[l.mode].S0 = next
	}
	return l.execATN(input, next)
}

// computeStartState forms the initial config set by taking every
// outgoing transition of the mode's start state, assigning alt = i+1 to
// the i-th transition, using Empty context, and closuring each
// (spec.md §4.G.3).
func (l *LexerATNSimulator) computeStartState(input CharStream, mode int) *ATNConfigSet {
	p := l.atn.ModeStartState(mode)
	configs := NewATNConfigSet()
	for i, t := range p.GetTransitions() {
		target := t.getTarget()
		cfg := NewLexerATNConfig(target, i+1, BasePredictionContextEmpty)
		l.closure(input, cfg, configs, false, false, false)
	}
	return configs
}

// execATN is the main loop of spec.md §4.G.4.
func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) (int, error) {
	t := input.LA(1)
	s := ds0

	for {
		if s.IsAcceptState {
			l.captureSimState(input, s)
			if t == EOF {
				break
			}
		}

		target := s.edgeAt(t)
		if target == nil {
			target = l.computeTargetState(input, s, t)
		}
		if target == errorDFAState {
			break
		}

		if t != EOF {
			l.consume(input)
		}

		if target.IsAcceptState {
			l.captureSimState(input, target)
			if t == EOF {
				break
			}
		}

		s = target
		t = input.LA(1)
	}

	return l.failOrAccept(input, t, s.GetConfigs())
}

func (l *LexerATNSimulator) captureSimState(input CharStream, s *DFAState) {
	l.prevAccept.index = input.Index()
	l.prevAccept.line = l.Line
	l.prevAccept.charPos = l.CharPositionInLine
	l.prevAccept.dfaState = s
}

// computeTargetState reaches s.GetConfigs() on t and installs the result
// into the DFA cache (spec.md §4.G.7).
func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reached := l.reach(input, s.GetConfigs())

	if reached.Len() == 0 {
		if !reached.HasSemanticContext {
			l.addDFAEdge(s, t, errorDFAState)
		}
		return errorDFAState
	}

	suppressEdge := reached.HasSemanticContext
	reached.HasSemanticContext = false

	target := l.addDFAState(reached)
	if !suppressEdge {
		l.addDFAEdge(s, t, target)
	}
	return target
}

func (l *LexerATNSimulator) addDFAEdge(from *DFAState, t int, to *DFAState) {
	from.setEdge(t, to)
}

// addDFAState interns configs by configuration-set identity, marking the
// resulting state accepting if any member config sits at a rule-stop
// state, and freezes configs before handing it to the per-mode cache
// (spec.md §4.G.7: "state interned ... accepting ... prediction =
// ruleToTokenType[ruleIndex]").
func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	proposed := NewDFAState(configs)

	for _, c := range configs.All() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			proposed.IsAcceptState = true
			proposed.LexerActionExecutor = c.GetLexerActionExecutor()
			proposed.Prediction = l.atn.TokenTypeForRule(c.GetState().GetRuleIndex())
			break
		}
	}

	configs.Freeze()
	return l.dfa[l.mode].AddState(proposed)
}

// reach consumes t from every config in closureSet, building the set of
// configs reachable after that one symbol (spec.md §4.G.5).
func (l *LexerATNSimulator) reach(input CharStream, closureSet *ATNConfigSet) *ATNConfigSet {
	reached := NewATNConfigSet()
	t := input.LA(1)
	skipAlt := make(map[int]bool)

	for _, c := range closureSet.All() {
		if skipAlt[c.GetAlt()] && c.PassedThroughNonGreedyDecision() {
			continue
		}
		for _, trans := range c.GetState().GetTransitions() {
			target := getReachableTarget(trans, t)
			if target == nil {
				continue
			}
			executor := c.GetLexerActionExecutor()
			if executor != nil {
				executor = executor.FixOffsetBeforeMatch(input.Index() - l.startIndex)
			}
			cfg := NewLexerATNConfigFrom(c, target, c.GetContext()).WithExecutor(executor)
			if trans.IsNonGreedy() {
				cfg = cfg.WithNonGreedy()
			}
			treatEOFAsEpsilon := t == EOF
			if l.closure(input, cfg, reached, false, true, treatEOFAsEpsilon) {
				skipAlt[c.GetAlt()] = true
				break
			}
		}
	}
	return reached
}

func getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, MinChar, MaxChar) {
		return trans.getTarget()
	}
	return nil
}

// closure computes the epsilon-closure of config into out, returning
// whether this alt's closure reached an accept state either here or in
// an earlier recursive call (spec.md §4.G.6). currentAltReachedAcceptState
// carries that "already accepted" fact down into the recursion so a
// config that passed through a non-greedy decision is deprioritized
// rather than added once its own alt has already produced an accept.
func (l *LexerATNSimulator) closure(input CharStream, config *LexerATNConfig, out *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon bool) bool {
	if _, ok := config.GetState().(*RuleStopState); ok {
		ctx := config.GetContext()
		if ctx.isEmpty() {
			out.Add(config)
			return true
		}
		if ctx.hasEmptyPath() {
			out.Add(NewLexerATNConfigFrom(config, config.GetState(), BasePredictionContextEmpty))
			currentAltReachedAcceptState = true
		}
		for i := 0; i < ctx.Len(); i++ {
			rs := ctx.GetReturnState(i)
			if rs == EmptyReturnState {
				continue
			}
			returnState := l.atn.GetState(rs)
			newContext := ctx.GetParent(i)
			cfg := NewLexerATNConfigFrom(config, returnState, newContext)
			if l.closure(input, cfg, out, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon) {
				currentAltReachedAcceptState = true
			}
		}
		return currentAltReachedAcceptState
	}

	if !config.GetState().OnlyHasEpsilonTransitions() {
		if currentAltReachedAcceptState && config.PassedThroughNonGreedyDecision() {
			return currentAltReachedAcceptState
		}
		out.Add(config)
	}

	for _, t := range config.GetState().GetTransitions() {
		c2 := l.getEpsilonTarget(input, config, t, out, speculative, treatEOFAsEpsilon)
		if c2 != nil {
			if t.IsNonGreedy() {
				c2 = c2.WithNonGreedy()
			}
			if l.closure(input, c2, out, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon) {
				currentAltReachedAcceptState = true
			}
		}
	}
	return currentAltReachedAcceptState
}

// getEpsilonTarget computes the successor config for following transition
// t without consuming input, per the per-kind rules of spec.md §4.G.8.
func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *LexerATNConfig, t Transition, out *ATNConfigSet, speculative, treatEOFAsEpsilon bool) *LexerATNConfig {
	switch tt := t.(type) {
	case *RuleTransition:
		newContext := l.sharedContextCache.Create(config.GetContext(), tt.followState.GetStateNumber())
		return NewLexerATNConfigFrom(config, tt.getTarget(), newContext)

	case *PrecedenceTransition:
		panic("lexatn: precedence transition encountered in a lexer ATN")

	case *PredicateTransition:
		out.HasSemanticContext = true
		if l.evaluatePredicate(input, tt.RuleIndex, tt.PredIndex, speculative) {
			return NewLexerATNConfigFrom(config, tt.getTarget(), config.GetContext())
		}
		return nil

	case *ActionTransition:
		if config.GetContext().isEmpty() || config.GetContext().hasEmptyPath() {
			executor := Append(config.GetLexerActionExecutor(), l.atn.LexerAction(tt.ActionIndex))
			return NewLexerATNConfigFrom(config, tt.getTarget(), config.GetContext()).WithExecutor(executor)
		}
		// Actions inside a referenced rule are intentionally dropped; see
		// DESIGN.md "Open Question decisions" — this is an acknowledged
		// upstream limitation, preserved rather than fixed.
		return NewLexerATNConfigFrom(config, tt.getTarget(), config.GetContext())

	case *EpsilonTransition:
		return NewLexerATNConfigFrom(config, tt.getTarget(), config.GetContext())

	default:
		if treatEOFAsEpsilon && t.Matches(EOF, MinChar, MaxChar) {
			return NewLexerATNConfigFrom(config, t.getTarget(), config.GetContext())
		}
		return nil
	}
}

// evaluatePredicate runs a user semantic predicate. When speculative it
// temporarily consumes one character so the predicate observes the same
// state the lexer will see at accept time, then restores input/line/
// charPos exactly (spec.md §4.G.9).
func (l *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	if l.lexer == nil || l.lexer.Recognizer == nil {
		return true
	}
	if !speculative {
		return l.lexer.Recognizer.Sempred(nil, ruleIndex, predIndex)
	}

	savedLine := l.Line
	savedCharPos := l.CharPositionInLine
	savedIndex := input.Index()
	mk := input.Mark()
	defer func() {
		l.Line = savedLine
		l.CharPositionInLine = savedCharPos
		input.Seek(savedIndex)
		input.Release(mk)
	}()

	l.consume(input)
	return l.lexer.Recognizer.Sempred(nil, ruleIndex, predIndex)
}

// consume reads LA(1), advances line/column bookkeeping, then advances
// input by one code point (spec.md §4.H).
func (l *LexerATNSimulator) consume(input CharStream) {
	if input.LA(1) == '\n' {
		l.Line++
		l.CharPositionInLine = 0
	} else {
		l.CharPositionInLine++
	}
	input.Consume()
}

// failOrAccept implements the arbitration of spec.md §4.G.10.
func (l *LexerATNSimulator) failOrAccept(input CharStream, t int, deadEnd *ATNConfigSet) (int, error) {
	if l.prevAccept.dfaState != nil {
		executor := l.prevAccept.dfaState.LexerActionExecutor
		l.accept(input, executor, l.startIndex, l.prevAccept.index, l.prevAccept.line, l.prevAccept.charPos)
		return l.prevAccept.dfaState.Prediction, nil
	}
	if t == EOF && input.Index() == l.startIndex {
		return TokenEOF, nil
	}
	return InvalidTokenType, NewLexerNoViableAltException(input, l.startIndex, deadEnd)
}

// accept commits to the winning match: rewind input to the accept point,
// restore Line/CharPositionInLine, and fire the deferred actions
// (spec.md §4.G.1 postconditions, §9 "deferred side effects").
func (l *LexerATNSimulator) accept(input CharStream, executor *LexerActionExecutor, startIndex, index, line, charPos int) {
	input.Seek(index)
	l.Line = line
	l.CharPositionInLine = charPos
	if executor != nil && l.lexer != nil {
		executor.Execute(l.lexer, startIndex)
	}
}

// GetCharPositionInLine and GetLine expose the simulator's authoritative
// position for the driver to read after Match returns.
func (l *LexerATNSimulator) GetCharPositionInLine() int { return l.CharPositionInLine }
func (l *LexerATNSimulator) GetLine() int                { return l.Line }
