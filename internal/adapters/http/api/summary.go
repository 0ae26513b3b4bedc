// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/footrank/internal/domain/report"
)

// SummaryHandler serves headline KPIs over the snapshot.
type SummaryHandler struct {
	snap Snapshot
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(snap Snapshot) *SummaryHandler {
	return &SummaryHandler{snap: snap}
}

type summaryResponse struct {
	report.Summary
	Top3Share            float64 `json:"top3_share"`
	CompetitivenessIndex float64 `json:"competitiveness_index"`
	DiversityIndex       float64 `json:"diversity_index"`
}

// HandleSummary handles GET /api/summary requests.
func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	entries := h.snap.Entries(0)
	writeJSON(w, http.StatusOK, summaryResponse{
		Summary:              report.Summarize(entries, h.snap.Rows()),
		Top3Share:            report.Top3Share(entries),
		CompetitivenessIndex: report.CompetitivenessIndex(entries),
		DiversityIndex:       report.ShannonIndex(entries),
	})
}
