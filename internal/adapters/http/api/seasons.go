// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SeasonsHandler lists the seasons present in the snapshot.
type SeasonsHandler struct {
	snap Snapshot
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(snap Snapshot) *SeasonsHandler {
	return &SeasonsHandler{snap: snap}
}

type seasonsResponse struct {
	Seasons []string `json:"seasons"`
}

// HandleSeasons handles GET /api/seasons requests.
func (h *SeasonsHandler) HandleSeasons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, seasonsResponse{Seasons: h.snap.Seasons()})
}
