package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/estudiomov/linkgate/internal/auth/http"
	authService "github.com/estudiomov/linkgate/internal/auth/service"
	"github.com/estudiomov/linkgate/internal/config"
	contatosHTTP "github.com/estudiomov/linkgate/internal/contatos/http"
	linksHTTP "github.com/estudiomov/linkgate/internal/links/http"
	"github.com/estudiomov/linkgate/internal/metrics"
	trabalhosHTTP "github.com/estudiomov/linkgate/internal/trabalhos/http"
)

// Server represents the main HTTP server hosting both the public link surface
// and the admin API.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server and assembles the router.
// metricsProvider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	linkHandler *linksHTTP.LinkHandler,
	viewerHandler *linksHTTP.ViewerHandler,
	trabalhoHandler *trabalhosHTTP.TrabalhoHandler,
	contatoHandler *contatosHTTP.ContatoHandler,
	apiKeyService authService.APIKeyService,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *Server {
	router := buildRouter(
		cfg,
		linkHandler,
		viewerHandler,
		trabalhoHandler,
		contatoHandler,
		apiKeyService,
		metricsProvider,
		logger,
	)

	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// buildRouter wires middleware and routes for the public and admin surfaces.
func buildRouter(
	cfg *config.Config,
	linkHandler *linksHTTP.LinkHandler,
	viewerHandler *linksHTTP.ViewerHandler,
	trabalhoHandler *trabalhosHTTP.TrabalhoHandler,
	contatoHandler *contatosHTTP.ContatoHandler,
	apiKeyService authService.APIKeyService,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Public surface, anonymous and rate limited per client IP
	public := router.Group("")
	if cfg.RateLimitEnabled {
		public.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}
	public.GET("/resolve-link", linkHandler.ResolveHandler)
	public.GET("/download-file", linkHandler.DownloadHandler)
	public.GET("/link/:token", viewerHandler.PageHandler)
	public.POST("/v1/contato", contatoHandler.SubmitHandler)

	// Admin surface, protected by the operator API key
	admin := router.Group("/v1")
	admin.Use(authHTTP.AdminKeyMiddleware(apiKeyService, cfg.AdminAPIKeyHash, logger))
	admin.POST("/links", linkHandler.RegenerateHandler)
	admin.GET("/links/current", linkHandler.CurrentLinkHandler)
	admin.POST("/trabalhos/:id/arquivos", trabalhoHandler.AddArquivoHandler)
	admin.GET("/trabalhos/:id/arquivos/:fileId/url", trabalhoHandler.SignedURLHandler)

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
