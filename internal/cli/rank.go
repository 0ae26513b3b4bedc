package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/okian/footrank/internal/adapters/csvio"
	service "github.com/okian/footrank/internal/app"
	"github.com/okian/footrank/internal/domain/graph"
	"github.com/okian/footrank/pkg/logger"
)

// Artifact file names, stable across commands.
const (
	globalRankingFile = "team_pagerank.csv"
	seasonRankingFile = "team_pagerank_with_league.csv"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Compute global and per-season influence rankings",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().String("input", "", "matches CSV path (overrides config)")
	rankCmd.Flags().String("output-dir", "", "artifact directory (overrides config)")

	rootCmd.AddCommand(rankCmd)
}

// newService builds the pipeline service from the loaded configuration.
func newService() (*service.Service, error) {
	globalPolicy, err := graph.ParsePolicy(cfg.GlobalDrawPolicy)
	if err != nil {
		return nil, fmt.Errorf("global draw policy: %w", err)
	}
	seasonPolicy, err := graph.ParsePolicy(cfg.SeasonDrawPolicy)
	if err != nil {
		return nil, fmt.Errorf("season draw policy: %w", err)
	}

	return service.New(
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithDamping(cfg.Damping),
		service.WithTolerance(cfg.Tolerance),
		service.WithMaxIterations(cfg.MaxIterations),
		service.WithGlobalDrawPolicy(globalPolicy),
		service.WithSeasonDrawPolicy(seasonPolicy),
	), nil
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	input := cfg.MatchesCSV
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		input = v
	}
	outDir := cfg.OutputDir
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		outDir = v
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
	globalPath := filepath.Join(outDir, globalRankingFile)
	if err := csvio.WriteGlobalRanking(globalPath, entries); err != nil {
		return fmt.Errorf("writing global ranking: %w", err)
	}

	rows, err := svc.SeasonRankings(ctx, matches)
	if err != nil {
		return fmt.Errorf("season rankings: %w", err)
	}
	seasonPath := filepath.Join(outDir, seasonRankingFile)
	if err := csvio.WriteSeasonRankings(seasonPath, rows); err != nil {
		return fmt.Errorf("writing season rankings: %w", err)
	}

	logger.Get().Info(ctx, "rankings written",
		logger.Int("teams", len(entries)),
		logger.Int("season_rows", len(rows)),
		logger.String("global", globalPath),
		logger.String("seasons", seasonPath),
	)

	top := cfg.TopN
	if top > len(entries) {
		top = len(entries)
	}
	for _, e := range entries[:top] {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-32s %.6f\n", e.Rank, e.Team, e.Score)
	}
	return nil
}
