package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/footrank/internal/adapters/csvio"
	"github.com/okian/footrank/internal/domain/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a plain-text summary report over the rankings",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().String("input", "", "matches CSV path (overrides config)")
	reportCmd.Flags().String("out", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	input := cfg.MatchesCSV
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		input = v
	}

	matches, err := csvio.ReadMatches(input)
	if err != nil {
		return fmt.Errorf("reading matches: %w", err)
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	entries, err := svc.GlobalRanking(ctx, matches)
	if err != nil {
		return fmt.Errorf("global ranking: %w", err)
	}
	rows, err := svc.SeasonRankings(ctx, matches)
	if err != nil {
		return fmt.Errorf("season rankings: %w", err)
	}

	text := report.RenderText(report.Summarize(entries, rows), entries, time.Now())

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
