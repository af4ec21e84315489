package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dfalex/regexlib"
)

var (
	emitFunc   string
	emitOutput string
)

var emitCmd = &cobra.Command{
	Use:   "emit <pattern>...",
	Short: "Generate a C recognizer for one or more patterns",
	Long: `Emits a goto-based C function that reads bytes with getchar() for as long as a
transition applies and returns the symbol of the state it stopped in, without
backing up to an earlier accepting state. Patterns get symbols 0, 1, ... in order.
Example) dfalex emit --func next_token "[0-9]+" "[a-z]+"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := buildRecognizer(args)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), emitOutput, func(w io.Writer) error {
			if err := r.EmitC(w, emitFunc); err != nil {
				return err
			}
			_, err := fmt.Fprintln(w)
			return err
		})
	},
}

func init() {
	emitCmd.Flags().StringVar(&emitFunc, "func", "GetNextToken", "Name of the generated C function")
	emitCmd.Flags().StringVarP(&emitOutput, "output", "o", "-", "Output file, - for stdout")
}

func buildRecognizer(patterns []string) (*regexlib.Recognizer, error) {
	b := regexlib.NewBuilder(buildOptions()...)
	for _, p := range patterns {
		if _, err := b.Add(p); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// writeOutput runs emit against stdout when path is "-" and against a new
// file otherwise.
func writeOutput(stdout io.Writer, path string, emit func(io.Writer) error) error {
	if path == "-" || path == "" {
		return emit(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := emit(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("written", zap.String("file", path))
	return nil
}
