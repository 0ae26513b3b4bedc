// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/footrank/internal/domain/types"
)

// Snapshot is the read-only ranking view the API serves. The dashboard never
// mutates or recomputes it.
type Snapshot interface {
	Entries(limit int) []types.Entry
	Seasons() []string
	Season(name string) []types.SeasonRow
	Rows() []types.SeasonRow
}

// Entry mirrors the read shape returned by ranking queries.
type Entry = types.Entry

// Server wires HTTP routes for the rankings API.
type Server struct {
	rankingsHandler   *RankingsHandler
	seasonsHandler    *SeasonsHandler
	summaryHandler    *SummaryHandler
	aggregatesHandler *AggregatesHandler
	reportHandler     *ReportHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	defaultLimit int
}

// WithDefaultLimit sets how many entries GET /api/rankings returns when no
// limit parameter is given.
func WithDefaultLimit(n int) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.defaultLimit = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(snap Snapshot, opts ...ServerOption) *Server {
	cfg := serverConfig{defaultLimit: defaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		rankingsHandler:   NewRankingsHandler(snap, cfg.defaultLimit, maxLimit),
		seasonsHandler:    NewSeasonsHandler(snap),
		summaryHandler:    NewSummaryHandler(snap),
		aggregatesHandler: NewAggregatesHandler(snap),
		reportHandler:     NewReportHandler(snap),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(handleHealth, "healthz"))
	mux.HandleFunc("/dashboard", handleDashboard)
	mux.HandleFunc("/api/rankings", MetricsMiddleware(s.rankingsHandler.HandleGlobal, "rankings"))
	mux.HandleFunc("/api/rankings/", MetricsMiddleware(s.rankingsHandler.HandleSeason, "rankings_season"))
	mux.HandleFunc("/api/seasons", MetricsMiddleware(s.seasonsHandler.HandleSeasons, "seasons"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleSummary, "summary"))
	mux.HandleFunc("/api/aggregates", MetricsMiddleware(s.aggregatesHandler.HandleAggregates, "aggregates"))
	mux.HandleFunc("/api/report", MetricsMiddleware(s.reportHandler.HandleReport, "report"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
