package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"dfalex/internal/grammar"
	"dfalex/internal/scan"
	"dfalex/lexer"
)

var (
	yesStyle   = color.New(color.FgGreen, color.Bold)
	noStyle    = color.New(color.FgRed, color.Bold)
	fileStyle  = color.New(color.FgCyan, color.Bold)
	nameStyle  = color.New(color.FgYellow)
	errorStyle = color.New(color.FgRed, color.Bold)
)

func loadLexer(path string) (*lexer.Lexer, error) {
	if path == "" {
		return nil, fmt.Errorf("--grammar is required")
	}
	g, err := grammar.Load(path)
	if err != nil {
		return nil, err
	}
	return g.Lexer(buildOptions()...)
}

func printResult(w io.Writer, res scan.Result) {
	if res.Path != "" {
		fileStyle.Fprintln(w, res.Path)
	}
	for _, tok := range res.Tokens {
		fmt.Fprintf(w, "  %d:%d\t%s\t%q\n", tok.Line, tok.Column, nameStyle.Sprint(tok.Name), tok.Text)
	}
	if res.Err != nil {
		fmt.Fprintf(w, "  %s %v\n", errorStyle.Sprint("error:"), res.Err)
	}
}
