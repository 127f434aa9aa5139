// Package server exposes tenant content, the timeline layout and the admin
// endpoints over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/tenant"
	"github.com/Zachkp/folio/internal/timeline"
	"github.com/Zachkp/folio/internal/visits"
)

type Server struct {
	cfg     config.Config
	tenants *tenant.Store
	auth    *auth.Authenticator
	visits  *visits.Store
	tracker *visits.Tracker
	metrics metrics.Recorder
	clock   timeline.Clock
	router  *gin.Engine
}

type Option func(*Server)

// WithTracker turns on visitor tracking and the stats endpoints.
func WithTracker(t *visits.Tracker) Option {
	return func(s *Server) {
		s.tracker = t
		s.visits = t.Store()
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(s *Server) { s.metrics = r }
}

func WithClock(c timeline.Clock) Option {
	return func(s *Server) { s.clock = c }
}

func New(cfg config.Config, tenants *tenant.Store, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		tenants: tenants,
		auth:    auth.New(cfg.Auth),
		metrics: metrics.NewNoop(),
		clock:   timeline.SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.Default()
	r.Use(requestID(), s.observe())
	if s.tracker != nil {
		r.Use(s.tracker.Middleware(s.tenantID))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/experiences", s.experiences)
	r.GET("/studies", s.studies)
	r.GET("/projects", s.projects)
	r.GET("/profile", s.profile)
	r.GET("/technologies", s.technologies)
	r.GET("/timeline", s.timeline)

	s.setupAdminRoutes(r)
	return r
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully
// and waits for pending visit recordings.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Listening on %s", addr)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	if s.tracker != nil {
		s.tracker.Wait()
	}
	return nil
}
