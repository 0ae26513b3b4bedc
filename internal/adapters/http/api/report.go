// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"

	"github.com/okian/footrank/internal/domain/report"
)

// ReportHandler serves the plain-text summary report.
type ReportHandler struct {
	snap Snapshot
	now  func() time.Time
}

// NewReportHandler creates a new report handler.
func NewReportHandler(snap Snapshot) *ReportHandler {
	return &ReportHandler{snap: snap, now: time.Now}
}

// HandleReport handles GET /api/report requests.
func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	entries := h.snap.Entries(0)
	summary := report.Summarize(entries, h.snap.Rows())
	text := report.RenderText(summary, entries, h.now())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
