package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/couchcryptid/quake-map/internal/pipeline"
	"github.com/couchcryptid/quake-map/internal/render"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MapBuilder builds a fresh map for a variant.
type MapBuilder interface {
	Build(ctx context.Context, variant domain.Variant) (mapview.Map, error)
}

// Server serves the map pages, the JSON map documents, and the health,
// readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	builder    MapBuilder
	logger     *slog.Logger
}

// NewServer creates an HTTP server. The feed timeout bounds each build, so the
// write timeout is set generously above it.
func NewServer(addr string, builder MapBuilder, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		builder: builder,
		logger:  logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage(domain.VariantClassic))
	mux.HandleFunc("GET /tectonic", s.handlePage(domain.VariantTectonic))
	mux.HandleFunc("GET /api/maps/{variant}", s.handleMapJSON)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handlePage(variant domain.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := s.build(w, r, variant)
		if !ok {
			return
		}

		// Render into a buffer so a template error still yields a clean 500.
		var buf bytes.Buffer
		if err := render.HTML(&buf, m); err != nil {
			s.logger.Error("render page failed", "variant", string(variant), "error", err)
			sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}

func (s *Server) handleMapJSON(w http.ResponseWriter, r *http.Request) {
	variant := domain.Variant(r.PathValue("variant"))
	m, ok := s.build(w, r, variant)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.JSON(&buf, m); err != nil {
		s.logger.Error("encode map failed", "variant", string(variant), "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "encode failed"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

// build runs the pipeline and writes the error response itself when the build
// fails, reporting whether the caller should continue.
func (s *Server) build(w http.ResponseWriter, r *http.Request, variant domain.Variant) (mapview.Map, bool) {
	m, err := s.builder.Build(r.Context(), variant)
	switch {
	case err == nil:
		return m, true
	case errors.Is(err, pipeline.ErrUnknownVariant):
		sharedobs.WriteJSON(w, http.StatusNotFound, map[string]string{
			"error":   "unknown map variant",
			"variant": string(variant),
		})
	default:
		sharedobs.WriteJSON(w, http.StatusBadGateway, map[string]string{
			"error":  "feed unavailable",
			"detail": err.Error(),
		})
	}
	return mapview.Map{}, false
}
