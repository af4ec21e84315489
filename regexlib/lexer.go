package regexlib

type tokenType int

const (
	tEOF      tokenType = iota
	tChar               // literal byte, escapes already decoded
	tDot                // .
	tLParen             // (
	tRParen             // )
	tUnion              // |
	tStar               // *
	tPlus               // +
	tQMark              // ?
	tLBrace             // {
	tRBrace             // }
	tComma              // , (for {m,n})
	tLBracket           // [
	tRBracket           // ]
	tDash               // - inside []
)

var metaTokens = map[byte]tokenType{
	'.': tDot,
	'(': tLParen,
	')': tRParen,
	'|': tUnion,
	'*': tStar,
	'+': tPlus,
	'?': tQMark,
	'{': tLBrace,
	'}': tRBrace,
	',': tComma,
	'[': tLBracket,
	']': tRBracket,
	'-': tDash,
}

type token struct {
	typ tokenType
	ch  int // byte value, also set for metacharacters so classes can use them literally
	off int
}

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) errorf(off int, msg string) error {
	return &PatternError{Pattern: l.input, Offset: off, Msg: msg, Err: ErrMalformedPattern}
}

func (l *lexer) next() (token, error) {
	off := l.pos
	if l.pos >= len(l.input) {
		return token{typ: tEOF, off: off}, nil
	}
	c := l.input[l.pos]
	l.pos++
	if c != '\\' {
		if typ, ok := metaTokens[c]; ok {
			return token{typ: typ, ch: int(c), off: off}, nil
		}
		return token{typ: tChar, ch: int(c), off: off}, nil
	}

	if l.pos >= len(l.input) {
		return token{}, l.errorf(off, "trailing backslash")
	}
	e := l.input[l.pos]
	l.pos++
	switch e {
	case 't':
		return token{typ: tChar, ch: '\t', off: off}, nil
	case 'n':
		return token{typ: tChar, ch: '\n', off: off}, nil
	case 'a':
		return token{typ: tChar, ch: '\a', off: off}, nil
	case 'b':
		return token{typ: tChar, ch: '\b', off: off}, nil
	case 'f':
		return token{typ: tChar, ch: '\f', off: off}, nil
	case 'r':
		return token{typ: tChar, ch: '\r', off: off}, nil
	case 'x', 'u':
		// always exactly two hex digits, \u included
		if l.pos+2 > len(l.input) {
			return token{}, l.errorf(off, "short hex escape")
		}
		hi, ok1 := fromHex(l.input[l.pos])
		lo, ok2 := fromHex(l.input[l.pos+1])
		if !ok1 || !ok2 {
			return token{}, l.errorf(off, "invalid hex escape")
		}
		l.pos += 2
		return token{typ: tChar, ch: hi<<4 | lo, off: off}, nil
	default:
		return token{typ: tChar, ch: int(e), off: off}, nil
	}
}

func fromHex(d byte) (int, bool) {
	switch {
	case d >= '0' && d <= '9':
		return int(d - '0'), true
	case d >= 'a' && d <= 'f':
		return int(d-'a') + 10, true
	case d >= 'A' && d <= 'F':
		return int(d-'A') + 10, true
	}
	return 0, false
}
