package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dfalex/internal/scan"
	"dfalex/lexer"
)

var (
	grammarPath string
	lexJSON     bool
	lexExts     []string
	lexWorkers  int
)

type fileTokens struct {
	Path   string        `json:"path"`
	Tokens []lexer.Token `json:"tokens"`
	Error  string        `json:"error,omitempty"`
}

var lexCmd = &cobra.Command{
	Use:   "lex --grammar <file> [paths...]",
	Short: "Tokenize files, or stdin when no path is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		lx, err := loadLexer(grammarPath)
		if err != nil {
			return err
		}

		var results []scan.Result
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			lx.Reset(string(data))
			toks, err := lx.All()
			results = []scan.Result{{Tokens: toks, Err: err}}
		} else {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			files, err := scan.Collect(args, lexExts)
			if err != nil {
				return err
			}
			opts := scan.Options{Workers: lexWorkers}
			if len(files) > 1 && !lexJSON {
				opts.Progress = cmd.ErrOrStderr()
			}
			results, err = scan.Files(ctx, logger, lx, files, opts)
			if err != nil {
				logger.Error("Error processing files", zap.Error(err))
				return err
			}
		}

		if err := writeResults(cmd.OutOrStdout(), results, lexJSON); err != nil {
			return err
		}
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d inputs failed to lex", failed, len(results))
		}
		return nil
	},
}

func init() {
	lexCmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "Grammar file (.yaml, .yml or .lex)")
	lexCmd.Flags().BoolVar(&lexJSON, "json", false, "Output tokens in JSON format")
	lexCmd.Flags().StringSliceVar(&lexExts, "ext", nil, "Only lex files with these extensions inside directories")
	lexCmd.Flags().IntVar(&lexWorkers, "workers", 0, "Concurrent files (default: number of CPUs)")
}

func writeResults(w io.Writer, results []scan.Result, asJSON bool) error {
	if !asJSON {
		for _, res := range results {
			printResult(w, res)
		}
		return nil
	}
	out := make([]fileTokens, 0, len(results))
	for _, res := range results {
		ft := fileTokens{Path: res.Path, Tokens: res.Tokens}
		if ft.Tokens == nil {
			ft.Tokens = []lexer.Token{}
		}
		if res.Err != nil {
			ft.Error = res.Err.Error()
		}
		out = append(out, ft)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
