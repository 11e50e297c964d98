package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports liveness and whether the content repository is reachable.
// A degraded repository still returns 200; pages degrade per section and the
// process itself is healthy.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok", "content": "ok"}
	if err := h.client.Ping(ctx); err != nil {
		status["content"] = "unreachable"
	}
	return c.JSON(http.StatusOK, status)
}
