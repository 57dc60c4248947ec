// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// Lexer action-type tags.
const (
	LexerActionTypeChannel = iota
	LexerActionTypeCustom
	LexerActionTypeMode
	LexerActionTypeMore
	LexerActionTypePopMode
	LexerActionTypePushMode
	LexerActionTypeSkip
	LexerActionTypeType
)

// LexerAction is one user-grammar action (`-> skip`, `-> pushMode(X)`,
// `{code}`, ...), recorded during simulation and fired after the match is
// committed (spec.md §4.E, §9 "deferred side effects").
type LexerAction interface {
	GetActionType() int
	// isPositionDependent is true for actions whose effect depends on the
	// text actually matched (custom actions); their offset must be fixed
	// up before replay (§4.E).
	isPositionDependent() bool
	execute(lexer *Lexer)
}

type baseLexerAction struct{ actionType int }

func (a baseLexerAction) GetActionType() int      { return a.actionType }
func (a baseLexerAction) isPositionDependent() bool { return false }

type SkipAction struct{ baseLexerAction }

func NewSkipAction() *SkipAction { return &SkipAction{baseLexerAction{LexerActionTypeSkip}} }
func (a *SkipAction) execute(l *Lexer) { l.Skip() }

type MoreAction struct{ baseLexerAction }

func NewMoreAction() *MoreAction { return &MoreAction{baseLexerAction{LexerActionTypeMore}} }
func (a *MoreAction) execute(l *Lexer) { l.More() }

type ModeAction struct {
	baseLexerAction
	Mode int
}

func NewModeAction(mode int) *ModeAction {
	return &ModeAction{baseLexerAction{LexerActionTypeMode}, mode}
}
func (a *ModeAction) execute(l *Lexer) { l.SetMode(a.Mode) }

type PushModeAction struct {
	baseLexerAction
	Mode int
}

func NewPushModeAction(mode int) *PushModeAction {
	return &PushModeAction{baseLexerAction{LexerActionTypePushMode}, mode}
}
func (a *PushModeAction) execute(l *Lexer) { l.PushMode(a.Mode) }

type PopModeAction struct{ baseLexerAction }

func NewPopModeAction() *PopModeAction {
	return &PopModeAction{baseLexerAction{LexerActionTypePopMode}}
}
func (a *PopModeAction) execute(l *Lexer) { l.PopMode() }

type TypeAction struct {
	baseLexerAction
	Type int
}

func NewTypeAction(tokenType int) *TypeAction {
	return &TypeAction{baseLexerAction{LexerActionTypeType}, tokenType}
}
func (a *TypeAction) execute(l *Lexer) { l.SetType(a.Type) }

type ChannelAction struct {
	baseLexerAction
	Channel int
}

func NewChannelAction(channel int) *ChannelAction {
	return &ChannelAction{baseLexerAction{LexerActionTypeChannel}, channel}
}
func (a *ChannelAction) execute(l *Lexer) { l.SetChannel(a.Channel) }

// LexerCustomAction wraps an arbitrary recognizer callback ({code}
// embedded in the grammar); it is position-dependent because it may read
// the text the lexer has matched so far.
type LexerCustomAction struct {
	baseLexerAction
	RuleIndex   int
	ActionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{baseLexerAction{LexerActionTypeCustom}, ruleIndex, actionIndex}
}
func (a *LexerCustomAction) isPositionDependent() bool { return true }
func (a *LexerCustomAction) execute(l *Lexer) {
	if l.Recognizer != nil {
		l.Recognizer.Action(nil, a.RuleIndex, a.ActionIndex)
	}
}

// lexerIndexedCustomAction binds a position-dependent action to the
// offset (relative to token start) where it must seek before firing;
// produced by LexerActionExecutor.FixOffsetBeforeMatch.
type lexerIndexedCustomAction struct {
	offset int
	action LexerAction
}

func (a *lexerIndexedCustomAction) GetActionType() int       { return a.action.GetActionType() }
func (a *lexerIndexedCustomAction) isPositionDependent() bool { return true }
func (a *lexerIndexedCustomAction) execute(l *Lexer) {
	mark := l.input.Mark()
	savedIndex := l.input.Index()
	defer func() {
		l.input.Seek(savedIndex)
		l.input.Release(mark)
	}()
	l.input.Seek(l.startIndex + a.offset)
	a.action.execute(l)
}

// LexerActionExecutor is the immutable, ordered list of actions a winning
// config carries; Append/FixOffsetBeforeMatch are copy-on-write so that
// sharing the executor across configs (and into a frozen DFA state) is
// always safe (spec.md §4.E).
type LexerActionExecutor struct {
	actions []LexerAction
	h       uint64
}

// NewLexerActionExecutor returns an executor wrapping actions as-is
// (caller must not mutate the backing slice afterward).
func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{actions: actions}
	e.h = e.computeHash()
	return e
}

func (e *LexerActionExecutor) computeHash() uint64 {
	var h uint64 = 7
	for _, a := range e.actions {
		h = h*31 + uint64(a.GetActionType()+1)
	}
	return h
}

// Append returns a new executor with action appended; existing is never
// mutated.
func Append(existing *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	if existing == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(existing.actions)+1)
	copy(actions, existing.actions)
	actions[len(existing.actions)] = action
	return NewLexerActionExecutor(actions)
}

// FixOffsetBeforeMatch returns a new executor in which every
// position-dependent action is rebound to fire at offset (measured from
// the eventual token start), so that replay after the scanner rewinds to
// the accept point reproduces what the action would have seen mid-scan
// (spec.md §4.E).
func (e *LexerActionExecutor) FixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	if e == nil {
		return nil
	}
	actions := make([]LexerAction, len(e.actions))
	changed := false
	for i, a := range e.actions {
		if a.isPositionDependent() {
			if _, already := a.(*lexerIndexedCustomAction); !already {
				actions[i] = &lexerIndexedCustomAction{offset: offset, action: a}
				changed = true
				continue
			}
		}
		actions[i] = a
	}
	if !changed {
		return e
	}
	return NewLexerActionExecutor(actions)
}

// Execute fires every action in order. lexer.input is assumed to already
// be positioned at the accept index; position-dependent actions will seek
// relative to startIndex and restore afterward.
func (e *LexerActionExecutor) Execute(lexer *Lexer, startIndex int) {
	if e == nil {
		return
	}
	lexer.startIndex = startIndex
	for _, a := range e.actions {
		a.execute(lexer)
	}
}

func (e *LexerActionExecutor) hash() uint64 {
	if e == nil {
		return 0
	}
	return e.h
}

func (e *LexerActionExecutor) equals(other *LexerActionExecutor) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if len(e.actions) != len(other.actions) {
		return false
	}
	for i := range e.actions {
		if e.actions[i] != other.actions[i] {
			return false
		}
	}
	return true
}
