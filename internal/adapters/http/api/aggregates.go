// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/okian/footrank/internal/domain/report"
)

// AggregatesHandler serves grouped influence views over the snapshot.
type AggregatesHandler struct {
	snap Snapshot
}

// NewAggregatesHandler creates a new aggregates handler.
func NewAggregatesHandler(snap Snapshot) *AggregatesHandler {
	return &AggregatesHandler{snap: snap}
}

// HandleAggregates handles GET /api/aggregates?dim=country|league requests.
func (h *AggregatesHandler) HandleAggregates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	dim, err := report.ParseDimension(r.URL.Query().Get("dim"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	aggs, err := report.AggregateBy(h.snap.Rows(), dim)
	if err != nil {
		if errors.Is(err, report.ErrUnknownDimension) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, aggs)
}
