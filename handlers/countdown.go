package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
	"github.com/lucasforesti/pilotoapi/viewmodel"
)

// ProximaCorridaStream pushes the next-race countdown over server-sent
// events, one update per second. The ticker is torn down when the client
// disconnects or the countdown reaches zero, whichever comes first.
func (h *Handler) ProximaCorridaStream(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()

	var next models.Event
	err := h.contentFor(c).Query(ctx, content.QueryNextEvent,
		map[string]any{"hojeISO": now.Format(time.RFC3339)}, &next)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "calendário indisponível")
	}
	if next.ID == "" {
		return c.NoContent(http.StatusNoContent)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.WriteHeader(http.StatusOK)

	send := func(left viewmodel.TimeLeft) error {
		payload, err := json.Marshal(left)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			return err
		}
		resp.Flush()
		return nil
	}

	if err := send(viewmodel.Remaining(next.Date.Time, now)); err != nil {
		return nil
	}

	countdown := viewmodel.NewCountdown(next.Date.Time)
	defer countdown.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case left := <-countdown.C:
			if err := send(left); err != nil {
				return nil
			}
			if left.Zero() {
				return nil
			}
		}
	}
}
