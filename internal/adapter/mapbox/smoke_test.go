//go:build mapbox

package mapbox

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real Mapbox API and require a valid MAPBOX_TOKEN env var.
// Run with: go test -tags=mapbox ./internal/adapter/mapbox/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	token := os.Getenv("MAPBOX_TOKEN")
	if token == "" {
		t.Fatal("MAPBOX_TOKEN must be set to run smoke tests")
	}
	return NewClient(token, 10*time.Second, discardLogger())
}

func TestSmoke_CheckToken(t *testing.T) {
	c := smokeClient(t)

	code, ok, err := c.CheckToken(context.Background())
	require.NoError(t, err)
	assert.True(t, ok, "token check returned %s", code)
}

func TestSmoke_StyleTile(t *testing.T) {
	c := smokeClient(t)

	tile := strings.NewReplacer("{z}", "1", "{x}", "0", "{y}", "0")
	for _, l := range TectonicLayers(c.token) {
		resp, err := http.Get(tile.Replace(l.URL)) //nolint:gosec,noctx // smoke test against a fixed host
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, l.Name)
	}
}
