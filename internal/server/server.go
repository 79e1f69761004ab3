// Package server exposes document upload and frequency analysis over a
// JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"textfreq/config"
	"textfreq/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP shell around the document and analyze use cases.
type Server struct {
	docs       *usecase.DocumentUseCase
	analyzer   *usecase.AnalyzeUseCase
	cfg        *config.Config
	logger     *zap.Logger
	engine     *gin.Engine
	httpServer *http.Server
	startTime  time.Time
	stopwords  string
}

// New creates a server and registers its routes.
func New(
	docs *usecase.DocumentUseCase,
	analyzer *usecase.AnalyzeUseCase,
	stopwordVersion string,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(requestLogger(logger))
	engine.Use(recovery(logger))

	if cfg.Server.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Requested-With"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		docs:      docs,
		analyzer:  analyzer,
		cfg:       cfg,
		logger:    logger,
		engine:    engine,
		startTime: time.Now(),
		stopwords: stopwordVersion,
	}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	api.POST("/analyze", s.handleAnalyzeText)

	documents := api.Group("/documents")
	{
		documents.POST("", s.handleUpload)
		documents.GET("", s.handleList)
		documents.GET("/:id", s.handleGet)
		documents.DELETE("/:id", s.handleDelete)
		documents.GET("/:id/analyze", s.handleAnalyze)
		documents.GET("/:id/analyze/:n", s.handleAnalyzeSize)
		documents.GET("/:id/processing", s.handleProcessing)
	}
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return <-errCh
}
