package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"dfalex/regexlib"
)

type sample struct {
	pattern string
	input   string
}

var samples = []sample{
	{"[0-9]+", "1234"},
	{"[a-z]+", "asdf"},
	{"'.*'", "'asdf'"},
	{"aa[a-z]+", "dfa"},
}

func main() {
	yes := color.New(color.FgGreen, color.Bold)
	no := color.New(color.FgRed, color.Bold)
	for _, s := range samples {
		r, err := regexlib.Compile(s.pattern)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		sym := r.Match(s.input)
		c := yes
		if sym == regexlib.NoMatch {
			c = no
		}
		fmt.Printf("%-10s %-8q %s\n", s.pattern, s.input, c.Sprint(sym))
	}

	fmt.Println()
	if err := regexlib.MustCompile("[0-9]+").EmitC(os.Stdout, ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println()
}
