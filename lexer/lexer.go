// Package lexer slices input into classified tokens using one multi-pattern
// recognizer for tokens and a second one for the whitespace skipped between
// them.
package lexer

import (
	"errors"
	"fmt"

	"dfalex/regexlib"
)

var ErrNoMatch = errors.New("no token matches input")

type Token struct {
	Symbol int
	Name   string
	Text   string
	Offset int // from the start of the buffer
	Line   int // zero based
	Column int // zero based
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s(%d) %q", t.Line, t.Column, t.Name, t.Symbol, t.Text)
}

// Error reports input that no token pattern accepts.
type Error struct {
	Offset int
	Line   int
	Column int
	Text   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v near %q", e.Line, e.Column, ErrNoMatch, e.Text)
}

func (e *Error) Unwrap() error { return ErrNoMatch }

// Lexer holds a scan cursor over one buffer. The recognizers are shared and
// read-only; the cursor is not safe for concurrent use.
type Lexer struct {
	tokens *regexlib.Recognizer
	space  *regexlib.Recognizer
	names  []string

	input   string
	first   int
	last    int
	current int

	line      int
	lineStart int

	tokenStart     int
	tokenLength    int
	tokenSymbol    int
	tokenLine      int
	tokenLineStart int
}

// New returns a lexer over an empty buffer. space may be nil. names, if
// given, label symbols in Token.Name.
func New(tokens, space *regexlib.Recognizer, names []string) *Lexer {
	l := &Lexer{tokens: tokens, space: space, names: names}
	l.Reset("")
	return l
}

// Clone returns a lexer sharing l's recognizers with a fresh cursor.
func (l *Lexer) Clone() *Lexer { return New(l.tokens, l.space, l.names) }

func (l *Lexer) Reset(buf string) { l.ResetRange(buf, 0, len(buf)) }

// ResetRange scans buf[first:last]. Offsets stay relative to buf. It panics
// on bounds a slice expression would reject.
func (l *Lexer) ResetRange(buf string, first, last int) {
	_ = buf[first:last]
	l.input = buf
	l.first, l.last, l.current = first, last, first
	l.line, l.lineStart = 0, first
	l.tokenStart, l.tokenLength = first, 0
	l.tokenSymbol = regexlib.NoMatch
	l.tokenLine, l.tokenLineStart = 0, first
}

func (l *Lexer) newline(at int) {
	l.line++
	l.lineStart = at + 1
}

// skip consumes input for as long as the whitespace recognizer has a
// transition. Its accepting symbol is ignored.
func (l *Lexer) skip() {
	if l.space == nil || !l.space.HasStart() {
		return
	}
	state := regexlib.Start
	for l.current < l.last {
		next := l.space.Next(state, l.input[l.current])
		if next < 0 {
			break
		}
		if l.input[l.current] == '\n' {
			l.newline(l.current)
		}
		l.current++
		state = next
	}
}

// Advance skips whitespace and scans the next token. It returns false when
// nothing but skippable input remains. A token whose Symbol is NoMatch marks
// input no pattern accepts; the cursor is left at its end, and at its start
// when nothing was consumed, so the caller decides how to resynchronise.
func (l *Lexer) Advance() bool {
	l.skip()
	l.tokenStart = l.current
	l.tokenLine = l.line
	l.tokenLineStart = l.lineStart
	l.tokenLength = 0
	l.tokenSymbol = regexlib.NoMatch
	if l.current >= l.last {
		return false
	}
	if l.tokens == nil || !l.tokens.HasStart() {
		return true
	}

	sym, n := l.tokens.Walk(l.input[l.current:l.last])
	for i := l.current; i < l.current+n; i++ {
		if l.input[i] == '\n' {
			l.newline(i)
		}
	}
	l.current += n
	l.tokenLength = n
	l.tokenSymbol = sym
	return true
}

// Good reports whether the cursor is before the end of the buffer.
func (l *Lexer) Good() bool { return l.current < l.last }

func (l *Lexer) Lexeme() string {
	return l.input[l.tokenStart : l.tokenStart+l.tokenLength]
}

func (l *Lexer) Symbol() int { return l.tokenSymbol }

func (l *Lexer) Line() int { return l.tokenLine }

// Column is the offset of the current token from the start of its line.
func (l *Lexer) Column() int { return l.tokenStart - l.tokenLineStart }

// Offset is the buffer offset of the current token.
func (l *Lexer) Offset() int { return l.tokenStart }

// Name returns the rule name of symbol, or "" if unknown.
func (l *Lexer) Name(symbol int) string {
	if symbol < 0 || symbol >= len(l.names) {
		return ""
	}
	return l.names[symbol]
}

func (l *Lexer) Token() Token {
	return Token{
		Symbol: l.tokenSymbol,
		Name:   l.Name(l.tokenSymbol),
		Text:   l.Lexeme(),
		Offset: l.tokenStart,
		Line:   l.Line(),
		Column: l.Column(),
	}
}

// All scans the rest of the buffer. It stops at the first token no pattern
// accepts and returns the tokens before it with an *Error.
func (l *Lexer) All() ([]Token, error) {
	var out []Token
	for l.Advance() {
		tok := l.Token()
		if tok.Symbol == regexlib.NoMatch {
			end := l.tokenStart + 1
			if l.tokenLength > 0 {
				end = l.tokenStart + l.tokenLength
			}
			return out, &Error{
				Offset: tok.Offset,
				Line:   tok.Line,
				Column: tok.Column,
				Text:   l.input[l.tokenStart:end],
			}
		}
		out = append(out, tok)
	}
	return out, nil
}
