// Package types contains common read shapes used across the application
package types

// Entry is one row of a global influence ranking.
type Entry struct {
	Rank  int     `json:"rank"`
	Team  string  `json:"team"`
	Score float64 `json:"pagerank"`
}

// SeasonRow is one row of a season-partitioned ranking. League and Country
// are best-effort metadata: the first non-empty value seen for the team in
// that season's matches, home appearances before away ones. A team playing
// in more than one competition within a season keeps only the first.
type SeasonRow struct {
	Season  string  `json:"season"`
	Team    string  `json:"team"`
	Score   float64 `json:"pagerank"`
	League  string  `json:"league,omitempty"`
	Country string  `json:"country,omitempty"`
}
