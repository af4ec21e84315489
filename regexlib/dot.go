package regexlib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExportDOT writes a Graphviz representation of r to w.
func (r *Recognizer) ExportDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	for i, s := range r.states {
		shape := "circle"
		label := fmt.Sprintf("q%d", i)
		if s.Symbol != NoMatch {
			shape = "doublecircle"
			label = fmt.Sprintf("q%d\\n#%d", i, s.Symbol)
		}
		fmt.Fprintf(bw, "    q%d [shape=%s, label=\"%s\"];\n", i, shape, label)
		for _, t := range s.Transitions {
			style := ""
			if t.IsDefault() {
				style = ", style=dashed"
			}
			fmt.Fprintf(bw, "    q%d -> q%d [label=\"%s\"%s];\n", i, t.Target, dotLabel(t), style)
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", Start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotLabel(t Transition) string {
	var s string
	switch {
	case t.IsDefault():
		s = "."
	case t.Lo == t.Hi:
		s = quoteByte(t.Lo)
	default:
		s = quoteByte(t.Lo) + "-" + quoteByte(t.Hi)
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
