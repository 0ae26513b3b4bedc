// Package rank computes influence scores over a match graph.
//
// The algorithm is PageRank by power iteration: each step, a node keeps
// (1-alpha)/N of uniform teleport mass and receives alpha-weighted mass from
// its predecessors, split proportionally to edge weight. Mass parked on
// dangling nodes (teams that never lost) is redistributed uniformly every
// iteration so the scores keep summing to one.
package rank

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/okian/footrank/internal/domain/graph"
	"github.com/okian/footrank/internal/domain/types"
	"github.com/okian/footrank/pkg/metrics"
)

// Default ranking parameters.
const (
	defaultDamping       = 0.85
	defaultTolerance     = 1e-9
	defaultMaxIterations = 100
)

// Result holds the converged (or best available) scores for one graph.
type Result struct {
	// Scores maps team name to its influence score; scores sum to 1 over
	// the graph's node set.
	Scores map[string]float64

	// Iterations is the number of power iterations performed.
	Iterations int

	// Converged is false when the iteration budget ran out before the
	// tolerance was met. The scores are still the best available iterate;
	// callers surface this as a diagnostic, never as a failure.
	Converged bool
}

// Ranker runs the iterative influence computation.
type Ranker struct {
	damping   float64
	tolerance float64
	maxIter   int
}

// New creates a Ranker with configuration options.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		damping:   defaultDamping,
		tolerance: defaultTolerance,
		maxIter:   defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank computes influence scores for g. An empty graph yields ErrEmptyGraph;
// callers treat that as "no result for this scope", not as a failure. The
// context is checked between iterations.
func (r *Ranker) Rank(ctx context.Context, g *graph.Graph) (Result, error) {
	if g == nil || g.Empty() {
		return Result{}, ErrEmptyGraph
	}

	start := time.Now()
	defer func() {
		metrics.RecordRankDuration(float64(time.Since(start).Milliseconds()))
	}()

	nodes := g.Nodes()
	n := len(nodes)
	index := make(map[string]int, n)
	for i, name := range nodes {
		index[name] = i
	}

	// Normalized out-edge lists and the set of dangling nodes, fixed for the
	// whole iteration.
	type edge struct {
		to   int
		frac float64 // weight share of the source's total out-weight
	}
	outEdges := make([][]edge, n)
	dangling := make([]int, 0)
	for i, name := range nodes {
		total := g.OutWeight(name)
		if total == 0 {
			dangling = append(dangling, i)
			continue
		}
		edges := make([]edge, 0)
		g.Successors(name, func(to string, weight float64) {
			edges = append(edges, edge{to: index[to], frac: weight / total})
		})
		outEdges[i] = edges
	}

	cur := make([]float64, n)
	next := make([]float64, n)
	for i := range cur {
		cur[i] = 1.0 / float64(n)
	}

	teleport := (1.0 - r.damping) / float64(n)
	threshold := r.tolerance * float64(n)

	iterations := 0
	converged := false
	for iterations < r.maxIter {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		iterations++

		var danglingMass float64
		for _, i := range dangling {
			danglingMass += cur[i]
		}
		base := teleport + r.damping*danglingMass/float64(n)
		for i := range next {
			next[i] = base
		}
		for i, edges := range outEdges {
			if len(edges) == 0 {
				continue
			}
			share := r.damping * cur[i]
			for _, e := range edges {
				next[e.to] += share * e.frac
			}
		}

		var delta float64
		for i := range next {
			delta += math.Abs(next[i] - cur[i])
		}
		cur, next = next, cur
		if delta <= threshold {
			converged = true
			break
		}
	}

	metrics.RecordRankIterations(iterations)
	if !converged {
		metrics.RecordRankNonConverged()
	}

	scores := make(map[string]float64, n)
	for i, name := range nodes {
		scores[name] = cur[i]
	}
	return Result{Scores: scores, Iterations: iterations, Converged: converged}, nil
}

// Entries converts a score map into presentation order: score descending,
// ties broken by team name ascending, with 1-based ranks assigned.
func Entries(scores map[string]float64) []types.Entry {
	entries := make([]types.Entry, 0, len(scores))
	for team, score := range scores {
		entries = append(entries, types.Entry{Team: team, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Team < entries[j].Team
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
