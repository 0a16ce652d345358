package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"cakeshop/internal/config"
	"cakeshop/internal/handler"
	"cakeshop/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Server に渡す部品
type Deps struct {
	Session middleware.SessionResolver
	GraphQL *handler.GraphQLHandler
	Health  *handler.HealthHandler
}

// Server はechoとhttp.Serverをまとめたもの。
type Server struct {
	e          *echo.Echo
	httpServer *http.Server
	logger     *log.Logger
}

func New(cfg config.Config, logger *log.Logger, deps Deps) *Server {
	e := NewEcho(cfg, logger, deps)

	httpSrv := &http.Server{
		Addr:              cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{e: e, httpServer: httpSrv, logger: logger}
}

// ListenAndServe はShutdownされるまでブロックする。
func (s *Server) ListenAndServe() error {
	s.logger.Printf("starting http server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
