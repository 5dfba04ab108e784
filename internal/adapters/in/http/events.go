package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"deliveryops/internal/core/ports"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	defaultHeartbeat = 15 * time.Second
	streamBuffer     = 64
)

type streamMessage struct {
	name    ports.EventName
	payload []byte
}

// StreamEvents handles GET /api/v1/events. Every realtime notification is
// written as a Server-Sent Event named after the event; the data line carries
// the JSON payload. A client too slow to drain its buffer loses events.
func (s *Server) StreamEvents(ctx echo.Context) error {
	if s.events == nil {
		return s.fail(ctx, echo.NewHTTPError(http.StatusServiceUnavailable, "event stream is not available"))
	}

	messages := make(chan streamMessage, streamBuffer)
	for _, name := range ports.EventNames() {
		unsubscribe := s.events.Subscribe(name, func(_ context.Context, payload []byte) {
			select {
			case messages <- streamMessage{name: name, payload: payload}:
			default:
				s.logger.Warn("Dropping event for slow stream client", zap.String("event", string(name)))
			}
		})
		defer unsubscribe()
	}

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return nil
	}
	w.Flush()

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case msg := <-messages:
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.name, msg.payload); err != nil {
				return nil
			}
			w.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
