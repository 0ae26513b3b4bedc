// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for the dashboard API, e.g. ":9090".
	Addr string `koanf:"addr"`

	// DatabaseURL is the Postgres DSN for the relational match source.
	DatabaseURL string `koanf:"database_url"`

	// MatchesCSV is the default path of the extracted match table.
	MatchesCSV string `koanf:"matches_csv"`

	// OutputDir is where ranking artifacts are written.
	OutputDir string `koanf:"output_dir"`

	// Damping is the PageRank damping factor alpha.
	Damping float64 `koanf:"damping"`

	// Tolerance is the per-node L1 convergence tolerance.
	Tolerance float64 `koanf:"tolerance"`

	// MaxIterations bounds the power iteration.
	MaxIterations int `koanf:"max_iterations"`

	// WorkerCount sets the number of season-partition workers.
	WorkerCount int `koanf:"worker_count"`

	// TopN sets how many entries GET /api/rankings returns when no limit is
	// given, and the size of the rank command's stdout table.
	TopN int `koanf:"top_n"`

	// GlobalDrawPolicy and SeasonDrawPolicy select how draws contribute edges
	// per scope: "bidirectional" or "ignored". The global ranking historically
	// credits both sides of a draw half weight while the season ranking skips
	// draws entirely; the defaults keep that divergence reproducible.
	GlobalDrawPolicy string `koanf:"global_draw_policy"`
	SeasonDrawPolicy string `koanf:"season_draw_policy"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:         "info",
		Addr:             ":9090",
		DatabaseURL:      "postgres://localhost:5432/football?sslmode=disable",
		MatchesCSV:       "data/matches.csv",
		OutputDir:        "data",
		Damping:          0.85,
		Tolerance:        1e-9,
		MaxIterations:    100,
		WorkerCount:      runtime.NumCPU(),
		TopN:             10,
		GlobalDrawPolicy: "bidirectional",
		SeasonDrawPolicy: "ignored",
	}
	return c
}
