package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dfalex/regexlib"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input>...",
	Short: "Report whether each input is consumed and accepted by pattern",
	Long: `Runs the recognizer over each input with maximal consumption and prints the
accepting symbol (-1 for no match) next to a yes/no verdict.
Example) dfalex match "'.*'" "'asdf'" "'a'b'"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := regexlib.Compile(args[0], buildOptions()...)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, input := range args[1:] {
			sym, n := r.Walk(input)
			verdict := noStyle.Sprint("no ")
			if sym != regexlib.NoMatch {
				verdict = yesStyle.Sprint("yes")
			}
			fmt.Fprintf(w, "%s %2d %q (%d/%d bytes)\n", verdict, sym, input, n, len(input))
		}
		return nil
	},
}
