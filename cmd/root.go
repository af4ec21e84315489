package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dfalex/regexlib"
)

const defaultTimeout = 5 * time.Minute

var (
	verbose bool
	timeout time.Duration
	subset  bool
	strict  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "dfalex",
	Short:         "dfalex - compile regular expressions to DFAs and tokenize with them",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Give up after this long")
	rootCmd.PersistentFlags().BoolVar(&subset, "subset", false, "Merge states whose goto set contains the candidate's instead of equal ones")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Use the classic nullability and last-pattern-wins symbol rules")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(watchCmd)
}

// buildOptions are the regexlib options shared by every command.
func buildOptions() []regexlib.Option {
	opts := []regexlib.Option{regexlib.WithLogger(logger)}
	if subset {
		opts = append(opts, regexlib.WithMergePolicy(regexlib.MergeSubset))
	}
	if strict {
		opts = append(opts, regexlib.WithStrictSemantics())
	}
	return opts
}
