package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DBの疎通確認
type Pinger interface {
	Ping(ctx context.Context) error
}

// 関数をPingerとして使う
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type StatusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.health)
	e.GET("/readyz", h.ready)
}

// プロセスが生きていれば200
func (h *HealthHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// DBに届かなければ503
func (h *HealthHandler) ready(c echo.Context) error {
	if h.db == nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable", Reason: "db not configured"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable", Reason: "db not reachable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
