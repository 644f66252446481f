// Command bands reports how an earthquake feed falls into the depth bands of
// the classic and tectonic color scales. It also lists events whose depth sits
// exactly on a shared threshold, where the two scales disagree about band
// membership.
//
// Usage:
//
//	go run ./cmd/bands -feed https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson
//	go run ./cmd/bands -feed testdata/all_day.geojson
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/feed"
	"github.com/couchcryptid/quake-map/internal/config"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bands", flag.ContinueOnError)
	src := fs.String("feed", config.DefaultEarthquakeFeedURL, "earthquake feed URL or local GeoJSON file")
	timeout := fs.Duration("timeout", 15*time.Second, "feed request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	quakes, skipped, err := load(ctx, *src, *timeout)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "=== Depth Bands: %s ===\n", *src)
	fmt.Fprintf(stdout, "Events: %d (%d features skipped)\n", len(quakes), skipped)

	report(stdout, "classic", domain.ClassicDepthScale, quakes)
	report(stdout, "tectonic", domain.TectonicDepthScale, quakes)
	reportThresholds(stdout, quakes)
	return nil
}

// load reads the feed from a file path, or over HTTP when src is a URL.
func load(ctx context.Context, src string, timeout time.Duration) ([]domain.Earthquake, int, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, 0, fmt.Errorf("read feed file: %w", err)
		}
		quakes, skipped, err := domain.DecodeEarthquakes(data)
		if err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", src, err)
		}
		return quakes, skipped, nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := feed.NewClient(src, "", timeout, observability.NewMetrics(), logger)
	return client.EarthquakesWithSkipped(ctx)
}

func report(w io.Writer, name string, scale domain.ColorScale, quakes []domain.Earthquake) {
	counts := make([]int, len(scale.Bands)+1)
	for _, q := range quakes {
		counts[scale.Band(q.Depth)]++
	}

	fmt.Fprintf(w, "\n%s\n", name)
	for i, color := range scale.Palette() {
		fmt.Fprintf(w, "  %-10s %-8s %6d\n", bandLabel(scale, i), color, counts[i])
	}
}

func bandLabel(scale domain.ColorScale, i int) string {
	if i >= len(scale.Bands) {
		return "otherwise"
	}
	return fmt.Sprintf("%s %g", scale.Compare, scale.Bands[i].Threshold)
}

func reportThresholds(w io.Writer, quakes []domain.Earthquake) {
	var on []domain.Earthquake
	for _, q := range quakes {
		if domain.OnSharedThreshold(q.Depth) {
			on = append(on, q)
		}
	}

	fmt.Fprintf(w, "\nOn a shared threshold: %d\n", len(on))
	for _, q := range on {
		fmt.Fprintf(w, "  %-14s depth %-4g classic %s  tectonic %s  %s\n",
			q.ID, q.Depth, domain.DepthColorClassic(q.Depth), domain.DepthColorTectonic(q.Depth), q.Place)
	}
}
