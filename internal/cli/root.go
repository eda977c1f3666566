// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for numlin.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlin/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "numlin",
		Short: "numlin - dense linear algebra toolkit",
		Long: `numlin works with small dense matrices and solves linear systems
a·x = b with Gauss-Seidel iteration.

Settings are read from flags, NUMLIN_* environment variables and an optional
numlin.yaml, in that order of precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			if used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			cmd.SetContext(config.WithLogger(ctx, logger))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./numlin.yaml)")
	pf.Int("iterations", config.DefaultIterations, "Gauss-Seidel sweep budget")
	pf.Float64("tolerance", config.DefaultTolerance, "stop once the largest update is <= tolerance (0 disables)")
	pf.Bool("pivot-check", config.DefaultPivotCheck, "reject systems with a zero diagonal entry")
	pf.StringP("output", "o", config.DefaultFormat, "Output format (table|plain)")
	pf.Int("precision", config.DefaultPrecision, "digits after the decimal point (-1 for shortest)")
	pf.String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	pf.String("log-format", config.DefaultLogFormat, "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatTable, config.FormatPlain}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.LogFormatText, config.LogFormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewSolveCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		Solver: config.SolverConfig{
			Iterations: config.DefaultIterations,
			Tolerance:  config.DefaultTolerance,
			PivotCheck: config.DefaultPivotCheck,
		},
		Output: config.OutputConfig{Format: config.DefaultFormat, Precision: config.DefaultPrecision},
		Log:    config.LogConfig{Level: config.DefaultLogLevel, Format: config.DefaultLogFormat},
	}
}
