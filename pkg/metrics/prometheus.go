// Package metrics provides Prometheus metrics for the footrank pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the footrank service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Ingestion metrics - data quality at the boundary
	matchesLoaded prometheus.Counter
	rowsDropped   prometheus.Counter

	// Graph metrics - scale of the built structure
	graphNodes prometheus.Gauge
	graphEdges prometheus.Gauge

	// Ranking metrics - behavior of the power iteration
	rankIterations    prometheus.Histogram
	rankNonConverged  prometheus.Counter
	rankDuration      prometheus.Histogram
	seasonsRanked     prometheus.Counter
	seasonsEmpty      prometheus.Counter
	pipelineDuration  prometheus.Histogram
	partitionWorkers  prometheus.Gauge
	partitionQueueLen prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "footrank",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.matchesLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_loaded_total",
		Help:      "Total number of raw match rows read from a source",
	})

	m.rowsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_dropped_total",
		Help:      "Total number of match rows dropped for missing team identity",
	})

	m.graphNodes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "graph_nodes",
		Help:      "Node count of the most recently built graph",
	})

	m.graphEdges = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "graph_edges",
		Help:      "Edge count of the most recently built graph",
	})

	m.rankIterations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_iterations",
		Help:      "Power iterations needed until convergence",
		Buckets:   []float64{1, 5, 10, 20, 30, 50, 75, 100},
	})

	m.rankNonConverged = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_non_converged_total",
		Help:      "Rankings that exhausted the iteration budget before reaching tolerance",
	})

	m.rankDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_duration_milliseconds",
		Help:      "Wall time of a single ranking computation in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.seasonsRanked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seasons_ranked_total",
		Help:      "Season partitions that produced a ranking",
	})

	m.seasonsEmpty = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seasons_empty_total",
		Help:      "Season partitions skipped because their graph was empty",
	})

	m.pipelineDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_duration_milliseconds",
		Help:      "End-to-end duration of a pipeline invocation in milliseconds",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})

	m.partitionWorkers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "partition_workers",
		Help:      "Workers ranking season partitions",
	})

	m.partitionQueueLen = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "partition_queue_length",
		Help:      "Season jobs currently queued for ranking",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordMatchesLoaded adds to the loaded-rows counter.
func RecordMatchesLoaded(n int) {
	globalManager.matchesLoaded.Add(float64(n))
}

// RecordRowsDropped adds to the dropped-rows counter.
func RecordRowsDropped(n int) {
	globalManager.rowsDropped.Add(float64(n))
}

// UpdateGraphSize sets node and edge gauges for the latest graph build.
func UpdateGraphSize(nodes, edges int) {
	globalManager.graphNodes.Set(float64(nodes))
	globalManager.graphEdges.Set(float64(edges))
}

// RecordRankIterations observes the iteration count of a ranking run.
func RecordRankIterations(n int) {
	globalManager.rankIterations.Observe(float64(n))
}

// RecordRankNonConverged increments the budget-exhausted counter.
func RecordRankNonConverged() {
	globalManager.rankNonConverged.Inc()
}

// RecordRankDuration records ranking wall time in milliseconds.
func RecordRankDuration(latencyMs float64) {
	globalManager.rankDuration.Observe(latencyMs)
}

// RecordSeasonRanked increments the ranked-partitions counter.
func RecordSeasonRanked() {
	globalManager.seasonsRanked.Inc()
}

// RecordSeasonEmpty increments the skipped-partitions counter.
func RecordSeasonEmpty() {
	globalManager.seasonsEmpty.Inc()
}

// RecordPipelineDuration records end-to-end pipeline wall time in milliseconds.
func RecordPipelineDuration(latencyMs float64) {
	globalManager.pipelineDuration.Observe(latencyMs)
}

// UpdatePartitionWorkers sets the current partition worker count.
func UpdatePartitionWorkers(count int) {
	globalManager.partitionWorkers.Set(float64(count))
}

// UpdatePartitionQueueLength sets the current season job queue length.
func UpdatePartitionQueueLength(n int) {
	globalManager.partitionQueueLen.Set(float64(n))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// GetRegistry returns the custom registry used for scraping.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
