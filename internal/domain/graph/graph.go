// Package graph builds a directed weighted graph from match outcomes.
//
// Nodes are team names; an edge points from the loser to the winner and its
// weight accumulates across every meeting of the same ordered pair. How a
// draw contributes is governed by an explicit DrawPolicy, because the global
// and the season-partitioned rankings intentionally diverge on it.
package graph

import (
	"sort"

	"github.com/okian/footrank/internal/domain/model"
)

// Edge weights contributed per match outcome.
const (
	winWeight  = 1.0
	drawWeight = 0.5
)

// Graph is a directed weighted simple graph keyed by team name. Parallel
// results between the same ordered pair collapse into one edge whose weight
// is the sum of the per-match contributions. A Graph is built once and read
// afterwards; it is never mutated by consumers.
type Graph struct {
	out   map[string]map[string]float64
	nodes map[string]struct{}
	edges int
}

// Build constructs a graph from valid matches. Matches pairing a team with
// itself are skipped so the graph never holds a self-loop; the normalizer
// already rejects them, this is a structural invariant of the type.
func Build(matches []model.Match, opts ...Option) *Graph {
	cfg := buildConfig{policy: DrawBidirectionalHalfWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		out:   make(map[string]map[string]float64),
		nodes: make(map[string]struct{}),
	}

	for _, m := range matches {
		if m.HomeTeam == m.AwayTeam {
			continue
		}
		if winner, loser, ok := m.Winner(); ok {
			g.addEdge(loser, winner, winWeight)
			continue
		}
		switch cfg.policy {
		case DrawBidirectionalHalfWeight:
			g.addEdge(m.HomeTeam, m.AwayTeam, drawWeight)
			g.addEdge(m.AwayTeam, m.HomeTeam, drawWeight)
		case DrawIgnored:
			// a draw leaves no trace in this policy
		}
	}

	return g
}

func (g *Graph) addEdge(from, to string, weight float64) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
	targets, ok := g.out[from]
	if !ok {
		targets = make(map[string]float64)
		g.out[from] = targets
	}
	if _, exists := targets[to]; !exists {
		g.edges++
	}
	targets[to] += weight
}

// Nodes returns all team names in lexicographic order. Sorting keeps every
// downstream iteration deterministic.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NodeCount returns the number of teams in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Empty reports whether the graph has no nodes. Teams only enter the graph
// through edges, so an empty graph means the scope had no rankable matches.
func (g *Graph) Empty() bool {
	return len(g.nodes) == 0
}

// Weight returns the accumulated weight of edge from->to, zero if absent.
func (g *Graph) Weight(from, to string) float64 {
	return g.out[from][to]
}

// OutWeight returns the total weight leaving a node. A zero total marks a
// dangling node whose rank mass must be redistributed by the ranker.
func (g *Graph) OutWeight(from string) float64 {
	var total float64
	for _, w := range g.out[from] {
		total += w
	}
	return total
}

// Successors visits every out-edge of a node. Iteration order over targets
// is unspecified; callers needing determinism sort keys themselves.
func (g *Graph) Successors(from string, visit func(to string, weight float64)) {
	for to, w := range g.out[from] {
		visit(to, w)
	}
}
