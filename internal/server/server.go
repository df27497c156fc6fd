// Package server exposes the journal over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/logger"
)

type Server struct {
	journal *journal.Service
	metrics *Metrics
	engine  *gin.Engine
}

// New wires the routes for svc. gin's mode is left to the caller.
func New(svc *journal.Service) *Server {
	s := &Server{
		journal: svc,
		metrics: NewMetrics(),
		engine:  gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.metrics.Middleware(), requestLogger())
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.engine.Group("/api")
	{
		api.GET("/profile", s.getProfile)
		api.POST("/onboarding", s.completeOnboarding)
		api.POST("/onboarding/skip", s.skipOnboarding)
		api.GET("/catalog/questions", s.listQuestions)
		api.GET("/catalog/quotes", s.listQuotes)
		api.GET("/today", s.getToday)
		api.POST("/responses", s.postResponse)
		api.GET("/responses", s.listResponses)
		api.POST("/mood", s.postMood)
		api.GET("/analysis/:date", s.getAnalysis)
		api.GET("/history", s.getHistory)
		api.DELETE("/data", s.clearData)
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("Shutting down HTTP API")
	return srv.Shutdown(shutdownCtx)
}
