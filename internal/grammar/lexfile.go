package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"
)

// A .lex file is a list of `name = "pattern";` entries. The entry named
// whitespace sets the skip pattern; the rest are tokens in priority order.
// Patterns are Go strings, so backquotes avoid double escaping.
//
//	// comments are allowed
//	whitespace = `[ \t\n]+`;
//	number     = "[0-9]+";
type lexFile struct {
	Entries []*lexEntry `parser:"@@*"`
}

type lexEntry struct {
	Pos     plexer.Position
	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@(String | RawString) ';'"`
}

const whitespaceEntry = "whitespace"

var lexParser = participle.MustBuild[lexFile](participle.Unquote("String", "RawString"))

func ParseLex(filename, data string) (*Grammar, error) {
	f, err := lexParser.ParseString(filename, data)
	if err != nil {
		return nil, err
	}
	g := &Grammar{}
	sawSpace := false
	for _, e := range f.Entries {
		if e.Name == whitespaceEntry {
			if sawSpace {
				return nil, fmt.Errorf("%s: %w: whitespace set twice", e.Pos, ErrInvalidGrammar)
			}
			sawSpace = true
			g.Whitespace = e.Pattern
			continue
		}
		g.Tokens = append(g.Tokens, Token{Name: e.Name, Pattern: e.Pattern})
	}
	return g, nil
}
