// Package server assembles the relay: configuration, logging, the event
// bus, the hub, the chat service and the HTTP surface.
package server

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/chatwire/chatwire/internal/chat"
	"github.com/chatwire/chatwire/internal/config"
	"github.com/chatwire/chatwire/internal/handlers"
	"github.com/chatwire/chatwire/internal/hub"
	"github.com/chatwire/chatwire/internal/logging"
	"github.com/chatwire/chatwire/internal/pubsub"
	"github.com/chatwire/chatwire/internal/registry"
	ws "github.com/chatwire/chatwire/internal/websocket"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E      *echo.Echo
	Cfg    *config.Config
	PubSub *pubsub.WatermillBridge
	Hub    *hub.Hub

	registry       *registry.Registry
	service        *chat.Service
	wsHandler      *ws.Handler
	renameHandler  *handlers.RenameHandler
	messageHandler *handlers.MessageHandler

	// cancel stops the event bridge subscription on shutdown.
	cancel context.CancelFunc
}

// New creates a new Server instance with the full event pipeline running:
// service → bus → bridge → hub.
func New() *Server {
	logging.New()
	cfg := config.New()

	ps := pubsub.NewWatermillBridge()
	h := hub.New(cfg.HubBufferSize)
	reg := registry.New()
	svc := chat.NewService(reg, ps)

	ctx, cancel := context.WithCancel(context.Background())
	bridge := chat.NewEventBridge(ps, h)
	if err := bridge.Start(ctx); err != nil {
		slog.Error("failed to start event bridge", "error", err)
		cancel()
		panic(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Validator = handlers.NewValidator()

	return &Server{
		E:              e,
		Cfg:            cfg,
		PubSub:         ps,
		Hub:            h,
		registry:       reg,
		service:        svc,
		wsHandler:      ws.NewHandler(h, svc),
		renameHandler:  handlers.NewRenameHandler(svc),
		messageHandler: handlers.NewMessageHandler(),
		cancel:         cancel,
	}
}

// Service is a getter for the chat service, useful for testing.
func (s *Server) Service() *chat.Service {
	return s.service
}

// Registry is a getter for the participant registry, useful for testing.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}
