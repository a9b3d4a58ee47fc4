package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries state shared by every subcommand.
type rootOptions struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "vaultcheck",
		Short:         "Check a healthcheck export for vault readiness",
		Long:          "vaultcheck analyzes a backup healthcheck export and reports whether the environment can target a cloud vault.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd(opts))
	cmd.AddCommand(newSummaryCmd(opts))
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
