// Package api exposes the catalog pipeline as a JSON-over-HTTP service.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tmplhub/catalogd/internal/config"
	"github.com/tmplhub/catalogd/internal/utils"
)

// Server wraps the HTTP server and its routing.
type Server struct {
	httpServer *http.Server
	log        *utils.Logger
}

// NewServer builds the engine, middleware, and routes.
func NewServer(cfg config.ServerConfig, h *Handlers, log *utils.Logger) *Server {
	if log == nil {
		log = utils.NopLogger()
	}
	log = log.WithComponent("server")

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(requestLogger(log))

	registerRoutes(engine, h)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("listening")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
