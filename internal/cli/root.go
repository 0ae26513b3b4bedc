// Package cli wires the pipeline commands together.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/okian/footrank/internal/config"
	"github.com/okian/footrank/pkg/logger"
)

// Shared state populated by the root command before any subcommand runs.
var (
	cfg   *config.Config
	runID string
)

var rootCmd = &cobra.Command{
	Use:   "footrank",
	Short: "Football influence rankings from match results",
	Long: "footrank builds a directed graph of match outcomes, edge from loser\n" +
		"to winner, and ranks teams by structural influence, globally and per season.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default from FOOTRANK_CONFIG)")
}

// setup initializes logging and configuration for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		if err := os.Setenv("FOOTRANK_CONFIG", cfgFile); err != nil {
			return fmt.Errorf("setting config path: %w", err)
		}
	}

	loaded, err := config.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	runID = uuid.NewString()
	logger.Get().Info(cmd.Context(), "starting run",
		logger.String("run_id", runID),
		logger.String("command", cmd.Name()),
	)
	return nil
}
