package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chatwire/chatwire/internal/middleware"
	"github.com/chatwire/chatwire/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	s.E.FileFS("/", "static/index.html", web.FS)
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/ws", s.wsHandler.ServeWS)

	s.E.POST("/api/rename", s.renameHandler.RenamePost, rateLimiter)
	s.E.POST("/api/message", s.messageHandler.MessagePost)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
