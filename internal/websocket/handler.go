// Package websocket exposes the realtime connection endpoint and runs one
// session per accepted connection.
package websocket

import (
	"context"
	"log/slog"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/chatwire/chatwire/internal/chat"
	"github.com/chatwire/chatwire/internal/hub"
)

// Handler upgrades HTTP requests to WebSocket connections and runs the
// resulting sessions against the hub and the chat service.
type Handler struct {
	hub     *hub.Hub
	service *chat.Service
}

// NewHandler creates a WebSocket handler with its dependencies.
func NewHandler(h *hub.Hub, svc *chat.Service) *Handler {
	return &Handler{hub: h, service: svc}
}

// ServeWS handles a WebSocket upgrade request and blocks for the lifetime of
// the connection.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The chat page is served from the same origin; cross-origin checks
		// stay off so command-line clients can connect too.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("failed to upgrade connection to WebSocket", "error", err)
		return err
	}

	// Subscribe before joining so this session observes its own join event.
	sub := h.hub.Subscribe()

	participant, err := h.service.Join(c.Request().Context())
	if err != nil {
		slog.Error("failed to register participant", "error", err)
		h.hub.Unsubscribe(sub)
		conn.Close(websocket.StatusInternalError, "registration failed")
		return nil
	}

	sess := newSession(conn, sub, h.service, participant)
	sess.run(c.Request().Context())

	// Closing: detach from the hub first so no further frames queue up, then
	// deregister, which publishes the leave event and the updated roster.
	h.hub.Unsubscribe(sub)
	h.service.Leave(context.Background(), participant.ID)
	conn.Close(websocket.StatusNormalClosure, "")
	return nil
}
