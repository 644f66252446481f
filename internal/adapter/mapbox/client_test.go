package mapbox

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken         = "pk.test-token"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string) *Client {
	return &Client{
		token:      testToken,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     discardLogger(),
	}
}

func tokenServer(t *testing.T, status int, code string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tokens/v2", r.URL.Path)
		assert.Equal(t, testToken, r.URL.Query().Get("access_token"))

		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(status)
		resp := tokenResponse{Code: code}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_CheckToken_Valid(t *testing.T) {
	srv := tokenServer(t, http.StatusOK, "TokenValid")

	code, ok, err := testClient(srv.URL).CheckToken(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "TokenValid", code)
}

func TestClient_CheckToken_Invalid(t *testing.T) {
	srv := tokenServer(t, http.StatusUnauthorized, "TokenExpired")

	code, ok, err := testClient(srv.URL).CheckToken(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "TokenExpired", code)
}

func TestClient_CheckToken_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	_, _, err := testClient(srv.URL).CheckToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_CheckToken_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient.Timeout = 50 * time.Millisecond

	_, _, err := c.CheckToken(context.Background())
	require.Error(t, err)
}

func TestTectonicLayers(t *testing.T) {
	layers := TectonicLayers(testToken)
	require.Len(t, layers, 3)

	assert.Equal(t, mapview.BaseSatellite, layers[0].Name)
	assert.Equal(t, mapview.BaseGrayscale, layers[1].Name)
	assert.Equal(t, mapview.BaseOutdoors, layers[2].Name)

	for _, l := range layers {
		assert.True(t, strings.HasPrefix(l.URL, "https://api.mapbox.com/styles/v1/mapbox/"), l.URL)
		assert.Contains(t, l.URL, "/tiles/{z}/{x}/{y}?access_token=pk.test-token")
		assert.Equal(t, 512, l.TileSize)
		assert.Equal(t, -1, l.ZoomOffset)
	}
	assert.Contains(t, layers[0].URL, StyleSatellite)
}

func TestResolveTectonicLayers(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		srv := tokenServer(t, http.StatusOK, "TokenValid")
		layers := ResolveTectonicLayers(context.Background(), testClient(srv.URL), discardLogger())
		assert.Len(t, layers, 3)
	})

	t.Run("rejected token", func(t *testing.T) {
		srv := tokenServer(t, http.StatusUnauthorized, "TokenInvalid")
		layers := ResolveTectonicLayers(context.Background(), testClient(srv.URL), discardLogger())
		assert.Nil(t, layers)
	})

	t.Run("no client", func(t *testing.T) {
		assert.Nil(t, ResolveTectonicLayers(context.Background(), nil, discardLogger()))
	})

	t.Run("layers plug into composition", func(t *testing.T) {
		m := mapview.ComposeTectonic(mapview.Options{TectonicBaseLayers: TectonicLayers(testToken)}, nil, nil)
		assert.Equal(t, mapview.BaseSatellite, m.ActiveBase)
		assert.Contains(t, m.BaseLayers[0].URL, "api.mapbox.com")
	})
}
