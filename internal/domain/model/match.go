// Package model contains domain models passed between layers.
package model

// Match is one historical fixture as read from the relational source or a
// matches CSV. League and Country are best-effort descriptive fields and may
// be empty; an empty HomeTeam or AwayTeam marks the row as invalid.
//
// Team identity is the display name as-is. No case or whitespace
// normalization happens anywhere in the pipeline, so name variants are
// distinct teams.
type Match struct {
	Season    string
	League    string
	Country   string
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
}

// Draw reports whether the match ended level.
func (m Match) Draw() bool {
	return m.HomeScore == m.AwayScore
}

// Winner returns the winning and losing team names, or ok=false for a draw.
func (m Match) Winner() (winner, loser string, ok bool) {
	switch {
	case m.HomeScore > m.AwayScore:
		return m.HomeTeam, m.AwayTeam, true
	case m.AwayScore > m.HomeScore:
		return m.AwayTeam, m.HomeTeam, true
	default:
		return "", "", false
	}
}
