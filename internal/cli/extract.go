package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/footrank/internal/adapters/csvio"
	"github.com/okian/footrank/internal/adapters/repository"
	"github.com/okian/footrank/internal/domain/model"
	"github.com/okian/footrank/internal/domain/normalize"
	"github.com/okian/footrank/pkg/logger"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Export match results from the database to CSV",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().String("dsn", "", "database connection string (overrides config)")
	extractCmd.Flags().String("out", "", "output CSV path (overrides config)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dsn := cfg.DatabaseURL
	if v, _ := cmd.Flags().GetString("dsn"); v != "" {
		dsn = v
	}
	out := cfg.MatchesCSV
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		out = v
	}

	src, err := repository.OpenPostgres(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.Get().Warn(ctx, "closing database", logger.Error(cerr))
		}
	}()

	matches, err := src.Matches(ctx)
	if err != nil {
		return fmt.Errorf("reading matches: %w", err)
	}

	cleaned, err := exportMatches(matches, out)
	if err != nil {
		return err
	}

	logger.Get().Info(ctx, "matches exported",
		logger.Int("matches", len(cleaned.Matches)),
		logger.Int("dropped", cleaned.Dropped),
		logger.String("path", out),
	)
	return nil
}

// exportMatches drops rows with missing team identity before writing the
// extraction artifact, so the CSV carries only rankable rows.
func exportMatches(matches []model.Match, out string) (normalize.Result, error) {
	cleaned := normalize.Clean(matches)
	if err := csvio.WriteMatches(out, cleaned.Matches); err != nil {
		return normalize.Result{}, fmt.Errorf("writing matches: %w", err)
	}
	return cleaned, nil
}
