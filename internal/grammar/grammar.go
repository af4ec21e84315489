// Package grammar loads lexical grammars from YAML or .lex files.
package grammar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dfalex/lexer"
	"dfalex/regexlib"
)

var ErrInvalidGrammar = errors.New("invalid grammar")

type Token struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

type Grammar struct {
	Whitespace string  `yaml:"whitespace"`
	Tokens     []Token `yaml:"tokens"`
}

// Load reads a grammar file. Files ending in .yaml or .yml are YAML;
// anything else is parsed as a .lex file.
func Load(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g *Grammar
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		g, err = ParseYAML(data)
	default:
		g, err = ParseLex(path, string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func (g *Grammar) Validate() error {
	if len(g.Tokens) == 0 {
		return fmt.Errorf("%w: no tokens", ErrInvalidGrammar)
	}
	seen := make(map[string]bool, len(g.Tokens))
	for i, t := range g.Tokens {
		if t.Name == "" {
			return fmt.Errorf("%w: token %d has no name", ErrInvalidGrammar, i)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: duplicate token %q", ErrInvalidGrammar, t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

func (g *Grammar) Rules() []lexer.Rule {
	rules := make([]lexer.Rule, len(g.Tokens))
	for i, t := range g.Tokens {
		rules[i] = lexer.Rule{Name: t.Name, Pattern: t.Pattern}
	}
	return rules
}

// Lexer validates g and compiles it.
func (g *Grammar) Lexer(opts ...regexlib.Option) (*lexer.Lexer, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return lexer.Compile(g.Rules(), g.Whitespace, opts...)
}
