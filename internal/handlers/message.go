package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the payload returned by the message echo endpoint.
type MessageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// MessageHandler handles the stateless message echo endpoint. It never
// touches the relay core; it exists so clients can probe the API surface.
type MessageHandler struct{}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler() *MessageHandler {
	return &MessageHandler{}
}

// MessagePost handles POST /api/message.
func (h *MessageHandler) MessagePost(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request payload", Status: "error"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "message is required", Status: "error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("received: %s", req.Message),
		Status:  "success",
	})
}
