package regexlib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokens(t *testing.T) {
	l := newLexer(`a\*.|()[d-f]{3,}\x41`)
	want := []tokenType{
		tChar, tChar, tDot, tUnion, tLParen, tRParen,
		tLBracket, tChar, tDash, tChar, tRBracket,
		tLBrace, tChar, tComma, tRBrace, tChar, tEOF,
	}
	for i, typ := range want {
		tok, err := l.next()
		require.NoError(t, err)
		assert.Equal(t, typ, tok.typ, "token %d", i)
	}
}

func TestLexerEscapes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"tab", `\t`, '\t'},
		{"newline", `\n`, '\n'},
		{"backslash", `\\`, '\\'},
		{"bell", `\a`, '\a'},
		{"backspace", `\b`, '\b'},
		{"formfeed", `\f`, '\f'},
		{"return", `\r`, '\r'},
		{"hex lower", `\x4a`, 'J'},
		{"hex upper", `\xFF`, 0xff},
		{"u takes two digits", `\u41`, 'A'},
		{"escaped meta", `\[`, '['},
		{"unknown letter", `\q`, 'q'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := newLexer(tt.input).next()
			require.NoError(t, err)
			assert.Equal(t, tChar, tok.typ)
			assert.Equal(t, tt.want, tok.ch)
		})
	}
}

func TestLexerUFourDigitsIsTwoEscapes(t *testing.T) {
	l := newLexer(`\u0041`)
	tok, err := l.next()
	require.NoError(t, err)
	assert.Equal(t, 0x00, tok.ch)
	tok, err = l.next()
	require.NoError(t, err)
	assert.Equal(t, int('4'), tok.ch)
}

func TestLexerErrors(t *testing.T) {
	for _, in := range []string{`\`, `ab\`, `\x4`, `\xg1`, `\u`} {
		l := newLexer(in)
		var err error
		for err == nil {
			var tok token
			tok, err = l.next()
			if tok.typ == tEOF && err == nil {
				break
			}
		}
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrMalformedPattern), in)
	}
}
