package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "soclens"
)

var (
	fetchDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

	// Snapshot refresh metrics
	SnapshotFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_fetch_duration_seconds",
		Help:      "Time taken to fetch a snapshot from a datasource.",
		Buckets:   fetchDurationBuckets,
	}, []string{"source"})

	SnapshotFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_fetches_total",
		Help:      "Count of snapshot fetch attempts.",
	}, []string{"source", "status"})

	SnapshotAge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_age_seconds",
		Help:      "Age of the most recently stored snapshot.",
	}, []string{"source"})

	RefreshRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_runs_total",
		Help:      "Count of refresh executions.",
	}, []string{"status"})

	// Rendering metrics
	PageRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "page_render_duration_seconds",
		Help:      "Time taken to render a dashboard page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"page"})

	PageRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_renders_total",
		Help:      "Count of dashboard page renders.",
	}, []string{"page", "status"})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Snapshot cache lookups by outcome.",
	}, []string{"source", "outcome"})
)
