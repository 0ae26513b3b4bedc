// Package report derives aggregate views and summary statistics from
// computed rankings. Everything here is read-only over ranking artifacts.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/okian/footrank/internal/domain/types"
)

// Dimension selects the grouping axis for aggregate views.
type Dimension string

const (
	DimCountry Dimension = "country"
	DimLeague  Dimension = "league"
)

// Groups smaller than these are noise, not signal, and are dropped from
// aggregate views. Countries field fewer teams per league than leagues do.
const (
	minCountryGroup = 5
	minLeagueGroup  = 8
	maxGroups       = 15
)

// Summary holds the headline numbers for a ranking.
type Summary struct {
	TotalTeams int     `json:"total_teams"`
	TopTeam    string  `json:"top_team"`
	MeanScore  float64 `json:"mean_score"`
	TopCountry string  `json:"top_country"`
}

// Aggregate is one grouped row of an aggregate view.
type Aggregate struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Teams int     `json:"teams"`
}

// ParseDimension validates a user-supplied grouping axis.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(strings.ToLower(strings.TrimSpace(s))) {
	case DimCountry:
		return DimCountry, nil
	case DimLeague:
		return DimLeague, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
}

// Summarize computes headline KPIs. Entries must already be sorted by score
// descending; rows supply the country metadata.
func Summarize(entries []types.Entry, rows []types.SeasonRow) Summary {
	s := Summary{TotalTeams: len(entries)}
	if len(entries) == 0 {
		return s
	}

	s.TopTeam = entries[0].Team

	var sum float64
	for _, e := range entries {
		sum += e.Score
	}
	s.MeanScore = sum / float64(len(entries))

	counts := make(map[string]int)
	for _, r := range rows {
		if r.Country != "" {
			counts[r.Country]++
		}
	}
	best := 0
	for country, n := range counts {
		if n > best || (n == best && country < s.TopCountry) {
			best = n
			s.TopCountry = country
		}
	}
	return s
}

// AggregateBy sums influence per country or league. Groups below the minimum
// size are dropped and at most the top scoring groups are returned.
func AggregateBy(rows []types.SeasonRow, dim Dimension) ([]Aggregate, error) {
	var key func(types.SeasonRow) string
	var minGroup int
	switch dim {
	case DimCountry:
		key, minGroup = func(r types.SeasonRow) string { return r.Country }, minCountryGroup
	case DimLeague:
		key, minGroup = func(r types.SeasonRow) string { return r.League }, minLeagueGroup
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}

	type acc struct {
		score float64
		teams int
	}
	groups := make(map[string]*acc)
	for _, r := range rows {
		name := key(r)
		if name == "" {
			continue
		}
		a, ok := groups[name]
		if !ok {
			a = &acc{}
			groups[name] = a
		}
		a.score += r.Score
		a.teams++
	}

	out := make([]Aggregate, 0, len(groups))
	for name, a := range groups {
		if a.teams < minGroup {
			continue
		}
		out = append(out, Aggregate{Name: name, Score: a.score, Teams: a.teams})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > maxGroups {
		out = out[:maxGroups]
	}
	return out, nil
}

// Top3Share returns the percentage of total influence held by the three
// highest entries. Entries must be sorted by score descending.
func Top3Share(entries []types.Entry) float64 {
	var total, top float64
	for i, e := range entries {
		total += e.Score
		if i < 3 {
			top += e.Score
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * top / total
}

// CompetitivenessIndex is the coefficient of variation of scores, in percent.
// Low values mean a flat, competitive field; high values a dominated one.
func CompetitivenessIndex(entries []types.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Score
	}
	mean := sum / float64(len(entries))
	if mean == 0 {
		return 0
	}
	var variance float64
	for _, e := range entries {
		d := e.Score - mean
		variance += d * d
	}
	variance /= float64(len(entries))
	return math.Sqrt(variance) / mean * 100
}

// ShannonIndex measures influence diversity over normalized scores.
// Probabilities are floored to avoid log(0) on degenerate inputs.
func ShannonIndex(entries []types.Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Score
	}
	if total == 0 {
		return 0
	}
	const floor = 1e-12
	var h float64
	for _, e := range entries {
		p := e.Score / total
		if p < floor {
			p = floor
		}
		h -= p * math.Log(p)
	}
	return h
}

// RenderText produces the plain-text summary report.
func RenderText(s Summary, entries []types.Entry, now time.Time) string {
	var b strings.Builder
	b.WriteString("Football influence ranking: summary\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Total teams: %d\n", s.TotalTeams)
	if s.TopTeam != "" {
		fmt.Fprintf(&b, "Most influential team: %s\n", s.TopTeam)
	}
	fmt.Fprintf(&b, "Mean score: %.6f\n", s.MeanScore)
	if s.TopCountry != "" {
		fmt.Fprintf(&b, "Most represented country: %s\n", s.TopCountry)
	}
	b.WriteString("\nMethod:\n")
	b.WriteString("  directed match graph, edge from loser to winner (draws bidirectional)\n")
	b.WriteString("  power-iteration ranking, damping 0.85\n")
	fmt.Fprintf(&b, "\nTop 3 influence share: %.1f%%\n", Top3Share(entries))
	fmt.Fprintf(&b, "Competitiveness index: %.2f\n", CompetitivenessIndex(entries))
	fmt.Fprintf(&b, "Diversity index: %.3f\n", ShannonIndex(entries))
	b.WriteString("\nScores measure network centrality, not an official sporting table.\n")
	return b.String()
}
