// Package httpapi serves the console's HTTP surface: the OAuth token
// relay used by the redirect-based sign-in flow, plus a health probe.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// defaultTokenURL is Google's OAuth 2.0 token endpoint.
const defaultTokenURL = "https://oauth2.googleapis.com/token"

// Config holds what the relay needs to reach the provider and who may
// call it. ClientSecret stays server-side; it is never logged and
// never appears in any response.
type Config struct {
	// ClientID is the OAuth client the relay exchanges codes for.
	ClientID string
	// ClientSecret authenticates the relay to the token endpoint.
	ClientSecret string
	// TokenURL overrides the provider token endpoint (tests).
	TokenURL string
	// AllowedOrigins is the explicit CORS allow-list.
	AllowedOrigins []string
	// Listen is the bind address, e.g. ":8787".
	Listen string
}

// Server provides the HTTP handlers for the token relay.
type Server struct {
	engine *gin.Engine
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// New constructs the HTTP server with routes and middleware configured.
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{
		engine: router,
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires the API handlers together.
func (s *Server) registerRoutes() {
	s.engine.Use(s.requestLog())
	s.engine.Use(s.corsMiddleware())

	api := s.engine.Group("/api")
	{
		api.POST("/oauth/token", s.handleTokenExchange)
	}

	s.engine.GET("/healthz", s.handleHealth)
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLog records method, path and status. Request bodies are
// never logged; they can carry authorization codes.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("token relay listening", slog.String("addr", s.cfg.Listen))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
