package pipeline

import (
	"context"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	sharedretry "github.com/couchcryptid/storm-data-shared/retry"
)

const (
	warmInitialBackoff = 200 * time.Millisecond
	warmMaxBackoff     = 30 * time.Second
)

// Warm builds the tectonic map, which fetches both feeds, until one build
// succeeds or ctx ends. Readiness turns true on the first success, so a
// freshly started service becomes ready without waiting for page traffic.
// Failures are logged and retried with exponential backoff.
func (p *Pipeline) Warm(ctx context.Context) {
	backoff := warmInitialBackoff
	for {
		_, err := p.Build(ctx, domain.VariantTectonic)
		if err == nil {
			p.logger.Info("warm-up build succeeded")
			return
		}
		p.logger.Warn("warm-up build failed", "error", err, "retry_in", backoff)

		if !sharedretry.SleepWithContext(ctx, backoff) {
			p.logger.Info("warm-up stopped", "reason", ctx.Err())
			return
		}
		backoff = sharedretry.NextBackoff(backoff, warmMaxBackoff)
	}
}
