package api

import (
	"net/http"

	"github.com/okian/footrank/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// handleHealth serves GET /healthz. The Prometheus scrape of the pipeline
// registry doubles as the liveness signal.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
