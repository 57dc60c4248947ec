// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LexerRecognizer is the user-supplied hook set the simulator calls into
// for semantic predicates and embedded actions (spec.md §6). A nil
// recognizer is legal: Sempred then always evaluates to true (§4.G.9) and
// Action is simply never invoked by the lexer driver's reachable paths.
type LexerRecognizer interface {
	// Sempred evaluates the predIndex-th predicate of rule ruleIndex.
	// ctx is reserved for parser-style context-dependent predicates and is
	// always nil for a lexer-only ATN.
	Sempred(ctx interface{}, ruleIndex, predIndex int) bool
	// Action fires the actionIndex-th embedded action of rule ruleIndex.
	Action(ctx interface{}, ruleIndex, actionIndex int)
}

// ErrorListener receives unrecoverable lex errors (spec.md §6/§7).
type ErrorListener interface {
	SyntaxError(recognizer interface{}, offendingSymbol interface{}, line, column int, msg string, e error)
}

// ConsoleErrorListener writes syntax errors to an injected writer
// (os.Stderr by default), matching the teacher runtime's default
// listener (spec.md §6: "a console listener is installed by default").
type ConsoleErrorListener struct {
	Out io.Writer
}

// NewConsoleErrorListener returns a listener writing to os.Stderr.
func NewConsoleErrorListener() *ConsoleErrorListener {
	return &ConsoleErrorListener{Out: os.Stderr}
}

func (l *ConsoleErrorListener) SyntaxError(_ interface{}, _ interface{}, line, column int, msg string, _ error) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "line %d:%d %s\n", line, column, msg)
}

// DiagnosticListener is an ErrorListener that additionally prefixes each
// message with the offending source name, useful when multiple streams
// share one recognizer (SPEC_FULL.md ambient-stack "Logging").
type DiagnosticListener struct {
	Out        io.Writer
	SourceName string
}

func (l *DiagnosticListener) SyntaxError(_ interface{}, _ interface{}, line, column int, msg string, _ error) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	name := l.SourceName
	if name == "" {
		name = "<unknown>"
	}
	fmt.Fprintf(out, "%s line %d:%d %s\n", name, line, column, msg)
}

// escapeWhitespace renders control characters visibly for inclusion in
// error messages (spec.md §7: "whitespace escaped").
func escapeWhitespace(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
