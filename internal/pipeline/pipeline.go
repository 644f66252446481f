package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/couchcryptid/quake-map/internal/observability"
)

// ErrUnknownVariant is returned by Build for a variant it cannot compose.
var ErrUnknownVariant = errors.New("unknown map variant")

// Source fetches the feeds a map is built from.
type Source interface {
	Earthquakes(ctx context.Context) ([]domain.Earthquake, error)
	Boundaries(ctx context.Context) ([]domain.Boundary, error)
}

// MarkerPublisher exports the markers of a composed map.
type MarkerPublisher interface {
	PublishMarkers(ctx context.Context, variant domain.Variant, generatedAt time.Time, markers []mapview.Marker) error
}

// Pipeline runs acquisition, encoding, and composition for one map.
type Pipeline struct {
	source    Source
	publisher MarkerPublisher
	opts      mapview.Options
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Pipeline. Pass a nil publisher to disable marker export.
func New(source Source, publisher MarkerPublisher, opts mapview.Options, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:    source,
		publisher: publisher,
		opts:      opts,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once at least one map has been built, or an
// error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no map has been built yet")
	}
	return nil
}

// Ready reports whether a map has been built successfully.
func (p *Pipeline) Ready() bool {
	return p.ready.Load()
}

// Build fetches the feeds variant needs, waits for all of them, and composes
// the map. If any fetch fails nothing is composed.
func (p *Pipeline) Build(ctx context.Context, variant domain.Variant) (mapview.Map, error) {
	if !variant.Valid() {
		return mapview.Map{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	start := time.Now()
	label := string(variant)

	snap, err := p.acquire(ctx, variant)
	if err != nil {
		p.metrics.MapBuilds.WithLabelValues(label, "error").Inc()
		p.logger.Error("feed acquisition failed", "variant", label, "error", err)
		return mapview.Map{}, fmt.Errorf("acquire %s feeds: %w", label, err)
	}

	m := p.compose(variant, snap)

	markers := m.Markers()
	p.metrics.MapBuilds.WithLabelValues(label, "success").Inc()
	p.metrics.MapBuildSeconds.WithLabelValues(label).Observe(time.Since(start).Seconds())
	p.metrics.MarkersRendered.WithLabelValues(label).Add(float64(len(markers)))
	p.logger.Info("map built",
		"variant", label,
		"markers", len(markers),
		"boundaries", len(snap.boundaries),
		"duration", time.Since(start),
	)

	p.publish(ctx, variant, m.GeneratedAt, markers)
	p.ready.Store(true)
	return m, nil
}

func (p *Pipeline) compose(variant domain.Variant, snap snapshot) mapview.Map {
	if variant == domain.VariantTectonic {
		return mapview.ComposeTectonic(p.opts, snap.quakes, snap.boundaries)
	}
	return mapview.ComposeClassic(p.opts, snap.quakes)
}

// publish exports markers when a publisher is configured. Failures are logged
// and counted; the map is still returned to the caller.
func (p *Pipeline) publish(ctx context.Context, variant domain.Variant, generatedAt time.Time, markers []mapview.Marker) {
	if p.publisher == nil || len(markers) == 0 {
		return
	}
	if err := p.publisher.PublishMarkers(ctx, variant, generatedAt, markers); err != nil {
		p.metrics.PublishErrors.Inc()
		p.logger.Warn("publish markers failed", "variant", string(variant), "markers", len(markers), "error", err)
		return
	}
	p.metrics.MarkersPublished.Add(float64(len(markers)))
}
