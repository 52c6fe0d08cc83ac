// Package server exposes the gallery over a JSON HTTP API
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/gallery/internal/app"
)

// shutdownTimeout bounds how long in-flight requests may run after Start's context ends
const shutdownTimeout = 5 * time.Second

// Server represents the gallery HTTP API
type Server struct {
	app          *app.App
	router       *gin.Engine
	httpServer   *http.Server
	metrics      *Metrics
	shutdownOnce sync.Once
}

// NewServer creates the API server for a. It does not listen until Start.
func NewServer(a *app.App, addr string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		app:     a,
		router:  gin.New(),
		metrics: NewMetrics(),
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.routes()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	c := NewItemController(s.app.ItemService, s.app.Pipeline, s.metrics)

	s.router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "gallery",
			"metrics": s.metrics.GetSnapshot(),
		})
	})

	items := s.router.Group("/items")
	{
		items.GET("", c.List)
		items.POST("", c.Create)
		items.POST("/move", c.Move)
		items.GET("/:id", c.Get)
		items.PUT("/:id", c.Update)
		items.DELETE("/:id", c.Delete)
		items.GET("/:id/card.png", c.Card)
	}
}

// requestLogger logs every request through slog
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		s.metrics.IncRequests()
		ctx.Next()
		slog.Info("request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(start))
	}
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server's counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and serves until ctx is done,
// then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is done
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	slog.Info("gallery API starting", "addr", listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		slog.Info("API context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("serve error", "error", err)
			_ = s.Shutdown()
			return err
		}
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and saves the list
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		slog.Info("shutting down API")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			slog.Error("error shutting down http server", "error", shutdownErr)
			err = shutdownErr
		}
		if saveErr := s.app.ItemService.Save(context.Background()); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	})
	return err
}
