// Package web serves the case simulator over HTTP: an HTML page for
// browsers and a JSON API under /api/v1. Every visitor gets an independent
// session keyed by a cookie.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/casesim/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Options configures a Server.
type Options struct {
	CookieName string
	CookieTTL  time.Duration
	// SecureCookie sets the Secure attribute on the session cookie.
	SecureCookie bool
	Logger       *slog.Logger
	// Ready is consulted by /readyz. Nil means always ready.
	Ready HealthChecker
}

// Server wires session handling into a gin engine.
type Server struct {
	engine  *gin.Engine
	manager *session.Manager
	logger  *slog.Logger
	opts    Options
	page    *template.Template
}

// NewServer builds the engine and registers all routes.
func NewServer(manager *session.Manager, opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.CookieName == "" {
		opts.CookieName = "casesim_session"
	}
	if opts.CookieTTL <= 0 {
		opts.CookieTTL = 2 * time.Hour
	}

	page, err := template.ParseFS(templateFS, "templates/case.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	registerValidators()

	s := &Server{
		engine:  gin.New(),
		manager: manager,
		logger:  opts.Logger,
		opts:    opts,
		page:    page,
	}
	s.engine.Use(gin.Recovery(), requestLogger(s.logger))
	s.setupRoutes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// setupRoutes sets up page and API routes.
func (s *Server) setupRoutes() {
	s.engine.GET("/health", healthCheck)
	s.engine.GET("/readyz", s.readyCheck)

	pages := s.engine.Group("/", s.sessionMiddleware())
	{
		pages.GET("", s.showCase)
		pages.POST("reveal/:section", s.revealSection)
		pages.POST("diagnosis", s.submitDiagnosis)
		pages.POST("reset", s.resetCase)
	}

	v1 := s.engine.Group("/api/v1")
	{
		sess := v1.Group("/session", s.sessionMiddleware())
		{
			sess.GET("", s.apiGetSession)
			sess.POST("/reveal", s.apiReveal)
			sess.POST("/diagnosis", s.apiSubmitDiagnosis)
			sess.POST("/reset", s.apiReset)
		}
	}
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) readyCheck(c *gin.Context) {
	if s.opts.Ready != nil {
		if err := s.opts.Ready.HealthCheck(c.Request.Context()); err != nil {
			s.logger.WarnContext(c.Request.Context(), "readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Message: "session store unavailable",
				Code:    "not_ready",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
