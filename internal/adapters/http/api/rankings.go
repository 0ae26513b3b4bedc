// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Limits for GET /api/rankings.
const (
	defaultLimit = 50
	maxLimit     = 1000
)

// RankingsHandler serves the global and per-season rankings.
type RankingsHandler struct {
	snap         Snapshot
	defaultLimit int
	maxLimit     int
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(snap Snapshot, defaultLimit, maxLimit int) *RankingsHandler {
	return &RankingsHandler{
		snap:         snap,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleGlobal handles GET /api/rankings?limit=N requests.
func (h *RankingsHandler) HandleGlobal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	n := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request",
				fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest))
			return
		}
		n = parsed
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded",
			fmt.Errorf("%w: limit above %d", ErrBadRequest, h.maxLimit))
		return
	}

	writeJSON(w, http.StatusOK, h.snap.Entries(n))
}

// HandleSeason handles GET /api/rankings/{season} requests. Season names
// contain a slash (2015/2016), so everything after the prefix is the key.
func (h *RankingsHandler) HandleSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	season := strings.TrimPrefix(r.URL.Path, "/api/rankings/")
	if season == "" {
		writeError(w, http.StatusBadRequest, "bad_request",
			fmt.Errorf("%w: missing season", ErrBadRequest))
		return
	}

	rows := h.snap.Season(season)
	if rows == nil {
		writeError(w, http.StatusNotFound, "season_not_found",
			fmt.Errorf("%w: %s", ErrSeasonNotFound, season))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
