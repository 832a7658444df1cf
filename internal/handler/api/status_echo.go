package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"DartWatch/internal/usecase"
)

// StatusEchoHandler serves the ops endpoints when the monitor runs resident.
type StatusEchoHandler struct {
	monitor *usecase.Monitor
}

func NewStatusEchoHandler(monitor *usecase.Monitor) *StatusEchoHandler {
	return &StatusEchoHandler{monitor: monitor}
}

func (h *StatusEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/status", h.Status)
}

func (h *StatusEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StatusEchoHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.monitor.Status())
}
