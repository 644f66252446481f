// Command render builds one map from the live feeds and writes it to a file,
// either as the standalone page or as the JSON map document. Feed locations
// and the Mapbox token come from the same environment as the service.
//
// Usage:
//
//	go run ./cmd/render -variant tectonic -format html -out tectonic.html
//	go run ./cmd/render -variant classic -format json -at 2024-04-26T15:10:00Z
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/feed"
	"github.com/couchcryptid/quake-map/internal/adapter/mapbox"
	"github.com/couchcryptid/quake-map/internal/config"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/couchcryptid/quake-map/internal/observability"
	"github.com/couchcryptid/quake-map/internal/pipeline"
	"github.com/couchcryptid/quake-map/internal/render"
	"github.com/jonboulle/clockwork"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	variant := fs.String("variant", string(domain.VariantClassic), "map variant: classic or tectonic")
	format := fs.String("format", "html", "output format: html or json")
	out := fs.String("out", "", "output path (default stdout)")
	at := fs.String("at", "", "fixed RFC 3339 generation time for reproducible output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := domain.Variant(*variant)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", pipeline.ErrUnknownVariant, *variant)
	}
	write, err := writerFor(*format)
	if err != nil {
		return err
	}

	if *at != "" {
		ts, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("parse -at: %w", err)
		}
		domain.SetClock(clockwork.NewFakeClockAt(ts))
		defer domain.SetClock(nil)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := observability.NewCLILogger(cfg)
	metrics := observability.NewMetrics()

	opts := mapview.Options{Container: cfg.MapContainer}
	if cfg.MapboxToken != "" && v.NeedsBoundaries() {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.FeedTimeout, logger)
		opts.TectonicBaseLayers = mapbox.ResolveTectonicLayers(ctx, client, logger)
	}

	source := feed.NewClient(cfg.EarthquakeFeedURL, cfg.PlatesFeedURL, cfg.FeedTimeout, metrics, logger)
	m, err := pipeline.New(source, nil, opts, logger, metrics).Build(ctx, v)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := write(&buf, m); err != nil {
		return err
	}

	if *out == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // generated page is public
		return fmt.Errorf("write %s: %w", *out, err)
	}
	log.Printf("wrote %s map (%d markers): %s", v, len(m.Markers()), *out)
	return nil
}

func writerFor(format string) (func(io.Writer, mapview.Map) error, error) {
	switch format {
	case "html":
		return render.HTML, nil
	case "json":
		return render.JSON, nil
	default:
		return nil, fmt.Errorf("unknown format %q: want html or json", format)
	}
}
