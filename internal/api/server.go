// Package api exposes the footprint pipeline and community statistics over
// HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/frabecrazy/digital-footprint/internal/community"
	"github.com/frabecrazy/digital-footprint/internal/footprint"
)

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// Server serves submissions and community statistics.
type Server struct {
	calc    *footprint.Calculator
	stats   *community.Service
	log     zerolog.Logger
	metrics *metrics
	router  *gin.Engine
}

// New creates a Server around the given calculator and statistics service.
func New(calc *footprint.Calculator, stats *community.Service, log zerolog.Logger) *Server {
	s := &Server{
		calc:    calc,
		stats:   stats,
		log:     log,
		metrics: newMetrics(),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.metrics.middleware())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.POST("/footprint", s.handleSubmit)
	v1.GET("/community/medians", s.handleMedians)

	s.router = router
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until the context is cancelled or a termination
// signal arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("starting footprint API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.log.Error().Err(err).Msg("shutdown failed")
		return err
	}
	s.log.Info().Msg("server stopped")
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	s.respond(c, http.StatusOK, gin.H{"status": "ok"})
}

// handleSubmit computes a footprint from a full submission payload,
// appends it to the community store best-effort, and returns the result
// with current medians. A store failure downgrades to a warning; the
// respondent still gets their figures.
func (s *Server) handleSubmit(c *gin.Context) {
	var req submissionRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		s.respond(c, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	sub, err := req.validate()
	if err != nil {
		s.respond(c, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := s.calc.Estimate(sub)
	if errors.Is(err, footprint.ErrUnknownRole) {
		s.respond(c, http.StatusBadRequest, errorResponse{Error: "unknown role: " + sub.Role})
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("estimate failed")
		s.respond(c, http.StatusInternalServerError, errorResponse{Error: "estimation failed"})
		return
	}
	s.metrics.submissions.Inc()

	resp := submissionResponse{
		SubmissionID: uuid.NewString(),
		Result:       toResultResponse(result),
		Saved:        true,
	}

	if err := s.stats.Save(c.Request.Context(), result, time.Now().UTC()); err != nil {
		s.metrics.storeFailures.Inc()
		resp.Saved = false
		resp.Warning = "your result could not be saved to the community store"
	}

	medians, err := s.stats.Medians(c.Request.Context())
	switch {
	case errors.Is(err, community.ErrNoData):
		// no comparison yet, nothing to attach
	case err != nil:
		s.metrics.storeFailures.Inc()
		s.log.Warn().Err(err).Msg("median query failed")
	default:
		resp.Medians = medians
	}

	s.respond(c, http.StatusOK, resp)
}

func (s *Server) handleMedians(c *gin.Context) {
	medians, err := s.stats.Medians(c.Request.Context())
	switch {
	case errors.Is(err, community.ErrNoData):
		s.respond(c, http.StatusOK, mediansResponse{Available: false})
	case err != nil:
		s.metrics.storeFailures.Inc()
		s.log.Warn().Err(err).Msg("median query failed")
		s.respond(c, http.StatusServiceUnavailable, errorResponse{Error: "community store unavailable"})
	default:
		s.respond(c, http.StatusOK, mediansResponse{Available: true, Medians: medians})
	}
}

// respond encodes v with goccy/go-json rather than gin's default encoder.
func (s *Server) respond(c *gin.Context, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
