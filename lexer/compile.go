package lexer

import (
	"fmt"

	"dfalex/regexlib"
)

// Rule names one token pattern. Rules get symbols in slice order, and on a
// tie the earlier rule wins.
type Rule struct {
	Name    string
	Pattern string
}

// Compile builds the token recognizer from rules and a separate recognizer
// from whitespace. An empty whitespace pattern skips nothing.
func Compile(rules []Rule, whitespace string, opts ...regexlib.Option) (*Lexer, error) {
	b := regexlib.NewBuilder(opts...)
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		if _, err := b.Add(r.Pattern); err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Name, err)
		}
		names = append(names, r.Name)
	}
	space, err := regexlib.Compile(whitespace, opts...)
	if err != nil {
		return nil, fmt.Errorf("whitespace: %w", err)
	}
	return New(b.Build(), space, names), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(rules []Rule, whitespace string) *Lexer {
	l, err := Compile(rules, whitespace)
	if err != nil {
		panic(err)
	}
	return l
}
