package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/api/middleware"
	"github.com/feral-file/ff-token-gate/internal/api/rest"
	"github.com/feral-file/ff-token-gate/internal/api/shared/executor"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/metrics"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	Auth           middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	auth       *middleware.Authenticator
	gatherer   prometheus.Gatherer
	httpServer *http.Server
}

// New creates a new API server. A nil gatherer disables /metrics.
// It fails when the configured JWT public key cannot be parsed.
func New(cfg Config, exec executor.Executor, gatherer prometheus.Gatherer) (*Server, error) {
	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		return nil, err
	}
	return &Server{
		config:   cfg,
		executor: exec,
		auth:     auth,
		gatherer: gatherer,
	}, nil
}

// Router builds the gin engine with every route registered
func (s *Server) Router() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestScope())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))

	if s.gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(s.gatherer)))
	}

	rest.SetupRoutes(router, rest.NewHandler(s.config.Debug, s.executor), s.auth)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
