// Package feed fetches the earthquake and plate boundary GeoJSON documents.
package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
)

// Feed names used in logs and metric labels.
const (
	FeedEarthquakes = "earthquakes"
	FeedPlates      = "plates"
)

// maxBodyBytes caps a feed body. The USGS all_month feed is roughly 10 MB and
// PB2002 boundaries about 1.5 MB.
const maxBodyBytes = 64 << 20

// Client issues plain GET requests for the configured feeds. It does not
// retry and does not cache.
type Client struct {
	earthquakeURL string
	platesURL     string
	httpClient    *http.Client
	maxBody       int64
	metrics       *observability.Metrics
	logger        *slog.Logger
}

// NewClient creates a feed client with a per-request timeout.
func NewClient(earthquakeURL, platesURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		earthquakeURL: earthquakeURL,
		platesURL:     platesURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBody: maxBodyBytes,
		metrics: metrics,
		logger:  logger,
	}
}

// Earthquakes fetches and decodes the earthquake feed.
func (c *Client) Earthquakes(ctx context.Context) ([]domain.Earthquake, error) {
	quakes, _, err := c.EarthquakesWithSkipped(ctx)
	return quakes, err
}

// EarthquakesWithSkipped is Earthquakes that also returns the number of
// features dropped for lacking coordinates.
func (c *Client) EarthquakesWithSkipped(ctx context.Context) ([]domain.Earthquake, int, error) {
	start := time.Now()
	body, err := c.get(ctx, c.earthquakeURL, FeedEarthquakes)
	if err != nil {
		c.observe(FeedEarthquakes, start, err)
		return nil, 0, err
	}

	quakes, skipped, err := domain.DecodeEarthquakes(body)
	c.observe(FeedEarthquakes, start, err)
	if err != nil {
		return nil, 0, err
	}
	if skipped > 0 {
		c.metrics.FeaturesSkipped.WithLabelValues(FeedEarthquakes).Add(float64(skipped))
		c.logger.Warn("skipped features without coordinates", "feed", FeedEarthquakes, "skipped", skipped)
	}
	c.logger.Debug("feed fetched", "feed", FeedEarthquakes, "features", len(quakes), "duration", time.Since(start))
	return quakes, skipped, nil
}

// Boundaries fetches and decodes the plate boundary feed.
func (c *Client) Boundaries(ctx context.Context) ([]domain.Boundary, error) {
	start := time.Now()
	body, err := c.get(ctx, c.platesURL, FeedPlates)
	if err != nil {
		c.observe(FeedPlates, start, err)
		return nil, err
	}

	boundaries, err := domain.DecodeBoundaries(body)
	c.observe(FeedPlates, start, err)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("feed fetched", "feed", FeedPlates, "features", len(boundaries), "duration", time.Since(start))
	return boundaries, nil
}

func (c *Client) get(ctx context.Context, fullURL, feed string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", feed, err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s feed request: %w", feed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s feed error: status %d: %s", feed, resp.StatusCode, body)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read %s feed: %w", feed, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%s feed exceeds %d bytes", feed, c.maxBody)
	}
	return body, nil
}

func (c *Client) observe(feed string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.FeedFetches.WithLabelValues(feed, outcome).Inc()
	c.metrics.FeedFetchDuration.WithLabelValues(feed).Observe(time.Since(start).Seconds())
}
