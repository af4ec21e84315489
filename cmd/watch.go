package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dfalex/internal/scan"
)

var watchExts []string

var watchCmd = &cobra.Command{
	Use:   "watch --grammar <file> <paths...>",
	Short: "Re-tokenize files whenever they change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lx, err := loadLexer(grammarPath)
		if err != nil {
			return err
		}
		w, err := scan.NewWatcher(logger, args, watchExts)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		logger.Info("watching", zap.Strings("paths", args))
		out := cmd.OutOrStdout()
		err = w.Run(ctx, func(path string) {
			printResult(out, scan.File(lx, path))
		})
		if ctx.Err() != nil {
			return nil
		}
		return err
	},
}

func init() {
	watchCmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "Grammar file (.yaml, .yml or .lex)")
	watchCmd.Flags().StringSliceVar(&watchExts, "ext", nil, "Only react to files with these extensions")
}
