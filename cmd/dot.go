package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dotOutput string
	dotPNG    bool
)

var dotCmd = &cobra.Command{
	Use:   "dot <pattern>...",
	Short: "Export the state graph of one or more patterns as Graphviz",
	Long: `Writes the recognizer as a DOT graph, or renders it with dot -Tpng when --png is set.
Example) dfalex dot -o num.png --png "[0-9]+"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := buildRecognizer(args)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := r.ExportDOT(&buf); err != nil {
			return err
		}

		if dotPNG {
			if dotOutput == "-" || dotOutput == "" {
				return fmt.Errorf("--png needs an output file")
			}
			render := exec.CommandContext(cmd.Context(), "dot", "-Tpng", "-o", dotOutput)
			render.Stdin = &buf
			render.Stderr = cmd.ErrOrStderr()
			if err := render.Run(); err != nil {
				return fmt.Errorf("dot failed: %w", err)
			}
			logger.Info("PNG written", zap.String("file", dotOutput))
			return nil
		}

		return writeOutput(cmd.OutOrStdout(), dotOutput, func(w io.Writer) error {
			_, err := io.Copy(w, &buf)
			return err
		})
	},
}

func init() {
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "-", "Output file, - for stdout")
	dotCmd.Flags().BoolVar(&dotPNG, "png", false, "Render PNG via dot -Tpng")
}
