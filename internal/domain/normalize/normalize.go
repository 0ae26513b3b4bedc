// Package normalize validates raw match rows before graph construction.
package normalize

import (
	"github.com/okian/footrank/internal/domain/model"
	"github.com/okian/footrank/pkg/metrics"
)

// Result carries the cleaned matches and drop accounting for one input batch.
type Result struct {
	Matches []model.Match
	Dropped int
}

// Clean filters raw match rows, keeping input order. A row is dropped when
// either team name is empty, or when a row pairs a team with itself (such an
// edge would be a self-loop and is treated as invalid input). Scores are not
// validated further; a level score is a draw, never a reason to drop.
//
// Dropped rows are counted, not errors: bad rows at the boundary degrade the
// dataset, they do not abort the run.
func Clean(rows []model.Match) Result {
	out := make([]model.Match, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		if r.HomeTeam == "" || r.AwayTeam == "" || r.HomeTeam == r.AwayTeam {
			dropped++
			continue
		}
		out = append(out, r)
	}
	metrics.RecordRowsDropped(dropped)
	return Result{Matches: out, Dropped: dropped}
}
