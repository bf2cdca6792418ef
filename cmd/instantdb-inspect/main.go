package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	verbose bool
	logger  *zap.Logger
	// ready is set once PersistentPreRunE has built the real logger.
	ready bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&rootOptions{logger: zap.NewNop()})
}

func newRootCmdWithOptions(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "instantdb-inspect",
		Short: "Debug helpers for better-auth InstantDB schemas",
		Long: `instantdb-inspect pretty-prints documents and derives relationship labels
from reference field names.

Rendering follows INSPECT_RENDER_MODE (auto, rich, generic), INSPECT_COLOR
(auto, always, never) and INSPECT_STYLE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			opts.ready = true
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newPrettyCmd(opts),
		newLabelCmd(),
		newLinksCmd(opts),
	)
	return root
}

// reportError logs err once. Errors raised before the logger exists (flag
// and argument parsing) go through a fresh production logger.
func reportError(opts *rootOptions, err error) {
	logger := opts.logger
	if !opts.ready {
		built, buildErr := zap.NewProduction()
		if buildErr != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		logger = built
	}
	logger.Error("command failed", zap.Error(err))
	_ = logger.Sync()
}

func main() {
	opts := &rootOptions{logger: zap.NewNop()}
	if err := newRootCmdWithOptions(opts).Execute(); err != nil {
		reportError(opts, err)
		os.Exit(1)
	}
}
