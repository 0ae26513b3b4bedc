package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/okian/footrank/internal/adapters/csvio"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List the seasons present in the match data",
	RunE:  runSeasons,
}

func init() {
	seasonsCmd.Flags().String("input", "", "matches CSV path (overrides config)")

	rootCmd.AddCommand(seasonsCmd)
}

func runSeasons(cmd *cobra.Command, args []string) error {
	input := cfg.MatchesCSV
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		input = v
	}

	matches, err := csvio.ReadMatches(input)
	if err != nil {
		return fmt.Errorf("reading matches: %w", err)
	}

	counts := make(map[string]int)
	for _, m := range matches {
		if m.Season != "" {
			counts[m.Season]++
		}
	}
	seasons := make([]string, 0, len(counts))
	for s := range counts {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)

	for _, s := range seasons {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %6d matches\n", s, counts[s])
	}
	return nil
}
