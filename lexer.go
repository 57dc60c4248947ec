// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// Lexer is the driver loop of spec.md §4.H: it repeatedly calls the
// simulator's Match, handles SKIP/MORE, tracks the mode stack, and emits
// tokens through a TokenFactory.
type Lexer struct {
	Interp *LexerATNSimulator

	// Recognizer is the optional user hook set for Sempred/Action
	// callbacks (spec.md §6); nil means predicates always evaluate true
	// and embedded actions are no-ops.
	Recognizer LexerRecognizer

	input   CharStream
	factory TokenFactory

	errorListeners []ErrorListener

	mode      int
	modeStack []int

	channel int
	// defaultChannel is the channel every new token starts on; set by
	// WithChannel.
	defaultChannel int
	typ            int
	text    *string // explicit override set by a SetText-style action; nil means "compute from input"

	tokenStartCharIndex int
	tokenStartLine      int
	tokenStartColumn    int

	hitEOF bool

	// startIndex is the token start index passed to the running
	// LexerActionExecutor; position-dependent actions seek relative to it.
	startIndex int

	sourceName string
}

// LexerOption configures a Lexer at construction time (SPEC_FULL.md
// ambient-stack "Configuration": functional options, no config-file
// parser, since there is no process boundary here).
type LexerOption func(*Lexer)

// WithErrorListener replaces the default console listener.
func WithErrorListener(l ErrorListener) LexerOption {
	return func(lx *Lexer) { lx.errorListeners = []ErrorListener{l} }
}

// WithChannel sets the channel newly emitted tokens start on.
func WithChannel(channel int) LexerOption {
	return func(lx *Lexer) {
		lx.defaultChannel = channel
		lx.channel = channel
	}
}

// WithTokenFactory overrides the default CommonTokenFactory.
func WithTokenFactory(f TokenFactory) LexerOption {
	return func(lx *Lexer) { lx.factory = f }
}

// NewLexer wires an ATN, a CharStream, and a PredictionContextCache into
// a ready-to-use driver, installing a ConsoleErrorListener by default
// (spec.md §6).
func NewLexer(atn *ATN, input CharStream, opts ...LexerOption) *Lexer {
	lx := &Lexer{
		input:          input,
		factory:        NewCommonTokenFactory(),
		errorListeners: []ErrorListener{NewConsoleErrorListener()},
		channel:        DefaultChannel,
		mode:           DefaultMode,
		sourceName:     input.GetSourceName(),
	}
	lx.Interp = NewLexerATNSimulator(atn, lx, NewPredictionContextCache())
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// NextToken implements spec.md §4.H exactly.
func (l *Lexer) NextToken() (Token, error) {
	if l.input == nil {
		panic("lexatn: NextToken called with no input stream")
	}

	mk := openMark(l.input)
	defer mk.release()

	for {
		if l.hitEOF {
			return l.emitEOF(), nil
		}

		l.channel = l.defaultChannel
		l.tokenStartCharIndex = l.input.Index()
		l.tokenStartLine = l.Interp.GetLine()
		l.tokenStartColumn = l.Interp.GetCharPositionInLine()
		l.text = nil

		restartOuter := false
		for {
			l.typ = InvalidTokenType
			ttype, err := l.Interp.Match(l.input, l.mode)
			if err != nil {
				if nva, ok := err.(*LexerNoViableAltException); ok {
					l.notifyListeners(nva)
					l.recover(nva)
					ttype = Skip
				} else {
					return nil, err
				}
			}

			if l.input.LA(1) == EOF {
				l.hitEOF = true
			}
			if l.typ == InvalidTokenType {
				l.typ = ttype
			}
			if l.typ == Skip {
				restartOuter = true
				break
			}
			if l.typ != More {
				break
			}
		}
		if restartOuter {
			continue
		}
		return l.emit(), nil
	}
}

// recover advances past the offending code point so the driver can
// resume scanning (spec.md §4.H, §7 class 1). It does not consume past
// EOF.
func (l *Lexer) recover(*LexerNoViableAltException) {
	if l.input.LA(1) != EOF {
		l.input.Consume()
	}
}

func (l *Lexer) notifyListeners(e *LexerNoViableAltException) {
	for _, lst := range l.errorListeners {
		lst.SyntaxError(l, nil, l.tokenStartLine, l.tokenStartColumn, e.Error(), e)
	}
}

// emit builds the current token from tokenStart*/typ/channel/text; the
// per-token state is reset by NextToken before the next match. The token
// factory contract is spec.md §6.
func (l *Lexer) emit() Token {
	stop := l.input.Index() - 1
	text := ""
	if l.text != nil {
		text = *l.text
	} else if stop >= l.tokenStartCharIndex {
		text = l.input.GetText(l.tokenStartCharIndex, stop)
	}
	return l.factory.Create(l.sourceName, l.typ, text, l.channel, l.tokenStartCharIndex, stop, l.tokenStartLine, l.tokenStartColumn)
}

func (l *Lexer) emitEOF() Token {
	idx := l.input.Index()
	return l.factory.Create(l.sourceName, TokenEOF, "", DefaultChannel, idx, idx-1, l.Interp.GetLine(), l.Interp.GetCharPositionInLine())
}

// Skip directs the driver to discard the current token and start a new
// one; may be called from a grammar action (spec.md §4.E, §4.H).
func (l *Lexer) Skip() { l.typ = Skip }

// More directs the driver to keep the current token start position and
// continue accumulating (spec.md §4.H).
func (l *Lexer) More() { l.typ = More }

// SetType overrides the token type the current match would otherwise
// produce.
func (l *Lexer) SetType(t int) { l.typ = t }

// SetChannel overrides the channel the current token will be emitted on.
func (l *Lexer) SetChannel(c int) { l.channel = c }

// SetText overrides the text the current token will be emitted with.
func (l *Lexer) SetText(text string) { l.text = &text }

// Mode switches directly to mode m without touching the mode stack.
func (l *Lexer) Mode(m int) { l.mode = m }

// SetMode is an alias of Mode matching the ModeAction's naming.
func (l *Lexer) SetMode(m int) { l.mode = m }

// PushMode saves the current mode and switches to m.
func (l *Lexer) PushMode(m int) {
	l.modeStack = append(l.modeStack, l.mode)
	l.mode = m
}

// PopMode restores the most recently pushed mode; popping an empty stack
// is a grammar programming error and panics (spec.md §7 class 2).
func (l *Lexer) PopMode() int {
	if len(l.modeStack) == 0 {
		panic("lexatn: PopMode called with an empty mode stack")
	}
	n := len(l.modeStack) - 1
	l.mode = l.modeStack[n]
	l.modeStack = l.modeStack[:n]
	return l.mode
}

// GetMode returns the lexer's current mode.
func (l *Lexer) GetMode() int { return l.mode }

// GetCharIndex returns the input's current index.
func (l *Lexer) GetCharIndex() int { return l.input.Index() }

// GetLine returns the simulator's authoritative current line.
func (l *Lexer) GetLine() int { return l.Interp.GetLine() }

// GetCharPositionInLine returns the simulator's authoritative current column.
func (l *Lexer) GetCharPositionInLine() int { return l.Interp.GetCharPositionInLine() }

// Reset rewinds the lexer to scan input from the beginning again,
// clearing mode-stack and EOF state but leaving any already-populated
// per-mode DFA cache intact (callers wanting a cold cache call
// Interp.ClearDFA() separately).
func (l *Lexer) Reset() {
	l.input.Seek(0)
	l.Interp.Line = 1
	l.Interp.CharPositionInLine = 0
	l.mode = DefaultMode
	l.modeStack = nil
	l.hitEOF = false
	l.typ = InvalidTokenType
	l.channel = DefaultChannel
	l.text = nil
}
