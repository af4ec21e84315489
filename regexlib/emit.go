package regexlib

import (
	"bufio"
	"fmt"
	"io"
)

// EmitC writes r as a goto-based C function named funcName. Every state
// becomes a labelled block that reads one character with getchar and jumps
// on the first matching interval, then falls through to the default
// transition or returns the state's symbol. States and transitions appear
// in stored order.
func (r *Recognizer) EmitC(w io.Writer, funcName string) error {
	if funcName == "" {
		funcName = "GetNextToken"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "int %s() {\n", funcName)
	fmt.Fprintln(bw, "    int chr = 0;")
	for i, s := range r.states {
		fmt.Fprintf(bw, "    state_%d:\n", i)
		if len(s.Transitions) > 0 {
			fmt.Fprintln(bw, "    chr = getchar();")
		}
		breakTo := -1
		for _, t := range s.Transitions {
			if t.IsDefault() {
				breakTo = t.Target
				continue
			}
			fmt.Fprintf(bw, "    if (chr >= %d && chr <= %d){\n", t.Lo, t.Hi)
			fmt.Fprintf(bw, "        goto state_%d;\n", t.Target)
			fmt.Fprintln(bw, "    }")
		}
		if breakTo != -1 {
			fmt.Fprintf(bw, "    goto state_%d;\n", breakTo)
		} else {
			fmt.Fprintf(bw, "    return %d;\n", s.Symbol)
		}
	}
	fmt.Fprint(bw, "}")
	return bw.Flush()
}
