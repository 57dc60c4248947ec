// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// LexerATNConfig is a single point in the nondeterministic simulation:
// the ATN state it is parked at, which grammar alternative it belongs to,
// the prediction-context call stack, the deferred action executor it is
// carrying, and whether it has ever passed through a non-greedy decision
// (spec.md §3). Equality uses all five fields — the executor and
// non-greedy flag are part of identity because two configs that would
// otherwise collapse into one DFA state must stay distinct if they'd fire
// different actions.
type LexerATNConfig struct {
	state                        ATNState
	alt                          int
	context                      PredictionContext
	lexerActionExecutor          *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

// NewLexerATNConfig creates a fresh config at state for alt with context,
// no action executor, and passedThroughNonGreedyDecision=false — used by
// computeStartState (§4.G.3).
func NewLexerATNConfig(state ATNState, alt int, context PredictionContext) *LexerATNConfig {
	return &LexerATNConfig{state: state, alt: alt, context: context}
}

// NewLexerATNConfigFrom derives a successor config reusing alt, executor,
// and non-greedy flag from prev but moving to a new state/context — used
// by closure (§4.G.6) when following an epsilon transition.
func NewLexerATNConfigFrom(prev *LexerATNConfig, state ATNState, context PredictionContext) *LexerATNConfig {
	return &LexerATNConfig{
		state:                          state,
		alt:                            prev.alt,
		context:                        context,
		lexerActionExecutor:            prev.lexerActionExecutor,
		passedThroughNonGreedyDecision: prev.passedThroughNonGreedyDecision,
	}
}

// WithExecutor returns a copy of c carrying a different action executor;
// used by reach (§4.G.5) to bind a position-fixed executor onto the
// successor config.
func (c *LexerATNConfig) WithExecutor(executor *LexerActionExecutor) *LexerATNConfig {
	cp := *c
	cp.lexerActionExecutor = executor
	return &cp
}

// WithNonGreedy returns a copy of c with passedThroughNonGreedyDecision
// set.
func (c *LexerATNConfig) WithNonGreedy() *LexerATNConfig {
	cp := *c
	cp.passedThroughNonGreedyDecision = true
	return &cp
}

func (c *LexerATNConfig) GetState() ATNState     { return c.state }
func (c *LexerATNConfig) GetAlt() int             { return c.alt }
func (c *LexerATNConfig) GetContext() PredictionContext {
	return c.context
}
func (c *LexerATNConfig) GetLexerActionExecutor() *LexerActionExecutor {
	return c.lexerActionExecutor
}
func (c *LexerATNConfig) PassedThroughNonGreedyDecision() bool {
	return c.passedThroughNonGreedyDecision
}

func (c *LexerATNConfig) hash() uint64 {
	h := uint64(17)
	h = h*31 + uint64(c.state.GetStateNumber()+1)
	h = h*31 + uint64(c.alt)
	var ctxHash uint64
	if c.context != nil {
		ctxHash = c.context.hash()
	}
	h = h*31 + ctxHash
	h = h*31 + c.lexerActionExecutor.hash()
	if c.passedThroughNonGreedyDecision {
		h = h*31 + 1
	}
	return h
}

func (c *LexerATNConfig) equals(o *LexerATNConfig) bool {
	if c == o {
		return true
	}
	if c.state.GetStateNumber() != o.state.GetStateNumber() {
		return false
	}
	if c.alt != o.alt {
		return false
	}
	if c.passedThroughNonGreedyDecision != o.passedThroughNonGreedyDecision {
		return false
	}
	if !c.lexerActionExecutor.equals(o.lexerActionExecutor) {
		return false
	}
	switch {
	case c.context == o.context:
		return true
	case c.context == nil || o.context == nil:
		return false
	default:
		return c.context.equals(o.context)
	}
}
