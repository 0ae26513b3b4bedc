package service

import (
	"sort"

	"github.com/okian/footrank/internal/domain/types"
)

// Snapshot is an immutable view over computed rankings, built once and then
// served read-only. The HTTP layer never mutates or recomputes it.
type Snapshot struct {
	entries  []types.Entry
	rows     []types.SeasonRow
	seasons  []string
	bySeason map[string][]types.SeasonRow
}

// NewSnapshot indexes a global ranking and season rows for serving.
func NewSnapshot(entries []types.Entry, rows []types.SeasonRow) *Snapshot {
	s := &Snapshot{
		entries:  entries,
		rows:     rows,
		bySeason: make(map[string][]types.SeasonRow),
	}
	for _, r := range rows {
		s.bySeason[r.Season] = append(s.bySeason[r.Season], r)
	}
	s.seasons = make([]string, 0, len(s.bySeason))
	for season := range s.bySeason {
		s.seasons = append(s.seasons, season)
	}
	sort.Strings(s.seasons)
	return s
}

// Entries returns the global ranking, optionally truncated to limit.
// A limit of zero or less returns everything.
func (s *Snapshot) Entries(limit int) []types.Entry {
	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	return s.entries[:limit]
}

// Seasons returns the known seasons in ascending order.
func (s *Snapshot) Seasons() []string {
	return s.seasons
}

// Season returns the rows for one season, or nil if the season is unknown.
func (s *Snapshot) Season(name string) []types.SeasonRow {
	return s.bySeason[name]
}

// Rows returns every season row.
func (s *Snapshot) Rows() []types.SeasonRow {
	return s.rows
}
