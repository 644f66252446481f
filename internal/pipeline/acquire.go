package pipeline

import (
	"context"

	"github.com/couchcryptid/quake-map/internal/domain"
	"golang.org/x/sync/errgroup"
)

// snapshot is the data one map is composed from.
type snapshot struct {
	quakes     []domain.Earthquake
	boundaries []domain.Boundary
}

// acquire fetches the feeds for variant concurrently and returns only when
// all of them have finished. The first failure cancels the others and is
// returned; there is no partial snapshot.
func (p *Pipeline) acquire(ctx context.Context, variant domain.Variant) (snapshot, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		quakes     []domain.Earthquake
		boundaries []domain.Boundary
	)

	g.Go(func() error {
		q, err := p.source.Earthquakes(gctx)
		if err != nil {
			return err
		}
		quakes = q
		return nil
	})

	if variant.NeedsBoundaries() {
		g.Go(func() error {
			b, err := p.source.Boundaries(gctx)
			if err != nil {
				return err
			}
			boundaries = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snapshot{quakes: quakes, boundaries: boundaries}, nil
}
