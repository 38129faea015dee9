// Package server exposes the calculator over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rustyeddy/lotsize/config"
	"github.com/rustyeddy/lotsize/journal"
)

// Reader is implemented by journals that can read scenarios back.
type Reader interface {
	GetScenario(id string) (journal.Scenario, error)
	ListScenarios(limit int) ([]journal.Scenario, error)
}

// Server wires HTTP endpoints around the calculation engine.
type Server struct {
	Router  *gin.Engine
	cfg     *config.Config
	journal journal.Journal
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

// New builds the router. j may be nil, in which case scenario endpoints
// answer 503.
func New(cfg *config.Config, j journal.Journal, log *slog.Logger) *Server {
	m := NewMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogger(log))
	r.Use(m.Middleware())
	r.Use(CORSMiddleware())

	s := &Server{
		Router:  r,
		cfg:     cfg,
		journal: j,
		log:     log,
		metrics: m,
		now:     time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.GET("/health", s.health)
	s.Router.GET("/metrics", s.metrics.Handler())

	api := s.Router.Group("/api")
	{
		api.GET("/pairs", s.getPairs)
		api.POST("/calc", s.postCalc)
		api.POST("/scenarios", s.postScenario)
		api.GET("/scenarios", s.getScenarios)
		api.GET("/scenarios/:id", s.getScenario)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
