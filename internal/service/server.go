// Package service exposes the illumination engine over HTTP. The service
// is a thin presentation adapter: it supplies payloads and returns results
// verbatim, never re-deriving acuity or verdict fields.
package service

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"illuminate/internal/engine"
	"illuminate/internal/logging"
	"illuminate/internal/store"
	"illuminate/pkg/oracle"
)

// Server wires the engine, the oracle registry, and the analytics store
// behind the HTTP API.
type Server struct {
	engine   *engine.Engine
	registry *oracle.Registry
	store    store.Store
	log      *slog.Logger
}

// NewServer builds a Server over the given collaborators.
func NewServer(eng *engine.Engine, registry *oracle.Registry, st store.Store) *Server {
	return &Server{
		engine:   eng,
		registry: registry,
		store:    st,
		log:      logging.New("service"),
	}
}

// Router builds the gin router with all endpoints registered.
//
//	POST /v1/illuminate        - run one illumination cycle
//	GET  /v1/analytics/summary - per-oracle acuity and guardrail histogram
//	GET  /v1/analytics/runs    - recent runs (limit query param)
//	GET  /healthz              - liveness
//	GET  /metrics              - prometheus metrics
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	v1.POST("/illuminate", s.handleIlluminate)
	v1.GET("/analytics/summary", s.handleAnalyticsSummary)
	v1.GET("/analytics/runs", s.handleRecentRuns)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// ListenAndServe runs the HTTP server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("serving illumination API", "addr", addr)
	return s.Router().Run(addr)
}
