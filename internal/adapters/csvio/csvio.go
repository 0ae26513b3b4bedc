// Package csvio reads and writes the pipeline's CSV artifacts.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/okian/footrank/internal/domain/model"
	"github.com/okian/footrank/internal/domain/types"
	"github.com/okian/footrank/pkg/logger"
)

// Input headers come in two dialects depending on which extraction produced
// the file. Both spell team names the same way; scores and metadata differ.
var (
	homeScoreHeaders = []string{"home_score", "home_team_goal"}
	awayScoreHeaders = []string{"away_score", "away_team_goal"}
	leagueHeaders    = []string{"league_name", "league"}
	countryHeaders   = []string{"country_name", "country"}
)

// ReadMatches loads match rows from path. Headers are matched by name, not
// position, and synonym spellings are accepted. Rows with unparseable score
// cells are skipped and counted, never fatal. A missing file is fatal.
func ReadMatches(path string) ([]model.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var (
		matches []model.Match
		skipped int
	)
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
		}
		m, ok := cols.match(record)
		if !ok {
			skipped++
			continue
		}
		matches = append(matches, m)
	}
	if skipped > 0 {
		logger.Get().Debug(context.Background(), "skipped unparseable rows",
			logger.String("path", path), logger.Int("skipped", skipped))
	}
	return matches, nil
}

// columns maps the header layout of one input file to field indexes.
type columns struct {
	season, league, country int
	homeTeam, awayTeam      int
	homeScore, awayScore    int
}

func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	pick := func(names ...string) int {
		for _, n := range names {
			if i, ok := idx[n]; ok {
				return i
			}
		}
		return -1
	}

	c := columns{
		season:    pick("season"),
		league:    pick(leagueHeaders...),
		country:   pick(countryHeaders...),
		homeTeam:  pick("home_team"),
		awayTeam:  pick("away_team"),
		homeScore: pick(homeScoreHeaders...),
		awayScore: pick(awayScoreHeaders...),
	}
	if c.homeTeam < 0 || c.awayTeam < 0 || c.homeScore < 0 || c.awayScore < 0 {
		return columns{}, fmt.Errorf("%w: %s", ErrBadHeader, strings.Join(header, ","))
	}
	return c, nil
}

// match maps one record onto a Match. Cells pass through verbatim: team
// identity is the name as written, so whitespace variants stay distinct
// teams. Only score cells are trimmed before parsing.
func (c columns) match(record []string) (model.Match, bool) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return record[i]
	}

	hs, err := strconv.Atoi(strings.TrimSpace(field(c.homeScore)))
	if err != nil {
		return model.Match{}, false
	}
	as, err := strconv.Atoi(strings.TrimSpace(field(c.awayScore)))
	if err != nil {
		return model.Match{}, false
	}

	return model.Match{
		Season:    field(c.season),
		League:    field(c.league),
		Country:   field(c.country),
		HomeTeam:  field(c.homeTeam),
		AwayTeam:  field(c.awayTeam),
		HomeScore: hs,
		AwayScore: as,
	}, true
}

// WriteMatches writes the extraction artifact consumed by later stages.
func WriteMatches(path string, matches []model.Match) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"season", "league_name", "country_name",
			"home_team", "away_team", "home_score", "away_score"}); err != nil {
			return err
		}
		for _, m := range matches {
			row := []string{m.Season, m.League, m.Country, m.HomeTeam, m.AwayTeam,
				strconv.Itoa(m.HomeScore), strconv.Itoa(m.AwayScore)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteGlobalRanking writes the global ranking artifact, score descending.
func WriteGlobalRanking(path string, entries []types.Entry) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"team", "pagerank"}); err != nil {
			return err
		}
		for _, e := range entries {
			if err := w.Write([]string{e.Team, formatScore(e.Score)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSeasonRankings writes the per-season ranking artifact.
func WriteSeasonRankings(path string, rows []types.SeasonRow) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"season", "team", "pagerank", "league", "country"}); err != nil {
			return err
		}
		for _, r := range rows {
			row := []string{r.Season, r.Team, formatScore(r.Score), r.League, r.Country}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}
	w := csv.NewWriter(f)
	if err := body(w); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}
	return nil
}

// formatScore keeps full float precision without trailing zero noise.
func formatScore(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
