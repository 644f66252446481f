package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/quake-map/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quakeFeed = `{"type":"FeatureCollection","features":[
  {"type":"Feature","id":"nc1","properties":{"mag":1.1,"place":"The Geysers, CA"},"geometry":{"type":"Point","coordinates":[-122.8,38.8,2.1]}}
]}`

func TestRun_WritesJSONDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(quakeFeed))
	}))
	defer srv.Close()

	t.Setenv("EARTHQUAKE_FEED_URL", srv.URL)
	t.Setenv("MAPBOX_TOKEN", "")
	t.Setenv("LOG_LEVEL", "error")

	out := filepath.Join(t.TempDir(), "classic.json")
	err := run(context.Background(), []string{
		"-variant", "classic", "-format", "json", "-out", out, "-at", "2024-04-26T15:10:00Z",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		Variant     string    `json:"variant"`
		GeneratedAt time.Time `json:"generatedAt"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "classic", doc.Variant)
	assert.Equal(t, time.Date(2024, time.April, 26, 15, 10, 0, 0, time.UTC), doc.GeneratedAt)
}

func TestRun_UnknownVariant(t *testing.T) {
	err := run(context.Background(), []string{"-variant", "heatmap"}, &bytes.Buffer{})
	require.ErrorIs(t, err, pipeline.ErrUnknownVariant)
}

func TestRun_UnknownFormat(t *testing.T) {
	err := run(context.Background(), []string{"-format", "png"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "png"`)
}

func TestRun_BadTimestamp(t *testing.T) {
	err := run(context.Background(), []string{"-at", "yesterday"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse -at")
}
