// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import "fmt"

// LexerNoViableAltException is raised when Match runs out of viable
// configurations with no accept ever recorded (spec.md §4.G.1, §7
// class 1). The driver (§4.H) catches it, reports it to the
// ErrorListener, advances one code point, and resumes as SKIP.
type LexerNoViableAltException struct {
	StartIndex     int
	DeadEndConfigs *ATNConfigSet
	Input          CharStream
}

// NewLexerNoViableAltException captures the dead-end state at the point
// Match gave up.
func NewLexerNoViableAltException(input CharStream, startIndex int, deadEndConfigs *ATNConfigSet) *LexerNoViableAltException {
	return &LexerNoViableAltException{StartIndex: startIndex, DeadEndConfigs: deadEndConfigs, Input: input}
}

// Error implements error, formatted per spec.md §7: "token recognition
// error at: '<escaped-text>'".
func (e *LexerNoViableAltException) Error() string {
	text := ""
	if e.Input != nil {
		stop := e.StartIndex
		if stop < e.Input.Size() {
			text = e.Input.GetText(e.StartIndex, stop)
		}
	}
	return fmt.Sprintf("token recognition error at: '%s'", escapeWhitespace(text))
}
