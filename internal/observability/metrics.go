package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for feed acquisition
// and map composition.
type Metrics struct {
	// Feed acquisition metrics.
	FeedFetches       *prometheus.CounterVec   // labels: feed={earthquakes,plates}, outcome={success,error}
	FeedFetchDuration *prometheus.HistogramVec // labels: feed
	FeaturesSkipped   *prometheus.CounterVec   // labels: feed

	// Composition metrics.
	MapBuilds       *prometheus.CounterVec   // labels: variant, outcome={success,error}
	MapBuildSeconds *prometheus.HistogramVec // labels: variant
	MarkersRendered *prometheus.CounterVec   // labels: variant

	// Marker export metrics.
	MarkersPublished prometheus.Counter
	PublishErrors    prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "feed_fetches_total",
			Help:      "GeoJSON feed requests by feed and outcome.",
		}, []string{"feed", "outcome"}),
		FeedFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quakemap",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of a feed request including body decode.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"feed"}),
		FeaturesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "features_skipped_total",
			Help:      "Features dropped at decode because they could not be placed.",
		}, []string{"feed"}),
		MapBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "map_builds_total",
			Help:      "Map builds by variant and outcome.",
		}, []string{"variant", "outcome"}),
		MapBuildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quakemap",
			Name:      "map_build_duration_seconds",
			Help:      "Duration of acquisition plus composition for one map.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"variant"}),
		MarkersRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "markers_rendered_total",
			Help:      "Earthquake markers placed on composed maps.",
		}, []string{"variant"}),
		MarkersPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "markers_published_total",
			Help:      "Encoded markers written to the export topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakemap",
			Name:      "publish_errors_total",
			Help:      "Failed marker export batches.",
		}),
	}

	prometheus.MustRegister(
		m.FeedFetches,
		m.FeedFetchDuration,
		m.FeaturesSkipped,
		m.MapBuilds,
		m.MapBuildSeconds,
		m.MarkersRendered,
		m.MarkersPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedFetches:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakemap", Name: "feed_fetches_total"}, []string{"feed", "outcome"}),
		FeedFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "quakemap", Name: "feed_fetch_duration_seconds"}, []string{"feed"}),
		FeaturesSkipped:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakemap", Name: "features_skipped_total"}, []string{"feed"}),
		MapBuilds:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakemap", Name: "map_builds_total"}, []string{"variant", "outcome"}),
		MapBuildSeconds:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "quakemap", Name: "map_build_duration_seconds"}, []string{"variant"}),
		MarkersRendered:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakemap", Name: "markers_rendered_total"}, []string{"variant"}),
		MarkersPublished:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quakemap", Name: "markers_published_total"}),
		PublishErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quakemap", Name: "publish_errors_total"}),
	}
}
