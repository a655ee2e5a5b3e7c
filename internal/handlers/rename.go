package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chatwire/chatwire/internal/chat"
)

// RenameResponse is the payload returned by the rename endpoint. Success and
// failure both come back as HTTP 200; the payload carries the verdict.
type RenameResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RenameHandler handles display name change requests.
type RenameHandler struct {
	service *chat.Service
}

// NewRenameHandler creates a new RenameHandler.
func NewRenameHandler(svc *chat.Service) *RenameHandler {
	return &RenameHandler{service: svc}
}

// RenamePost handles POST /api/rename.
func (h *RenameHandler) RenamePost(c echo.Context) error {
	var req RenameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, RenameResponse{Success: false, Message: "invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, RenameResponse{Success: false, Message: "user_id is required"})
	}

	res := h.service.Rename(c.Request().Context(), req.UserID, req.NewName)

	var message string
	switch res.Outcome {
	case chat.RenameApplied:
		message = fmt.Sprintf("display name changed to %s", res.Name)
	case chat.RenameInvalidLength:
		message = fmt.Sprintf("display name must be between 1 and %d characters", chat.MaxNameLength)
	case chat.RenameInvalidCharacters:
		message = "display name may only contain letters, digits and underscores"
	case chat.RenameNameTaken:
		message = "display name is already taken"
	case chat.RenameNotFound:
		message = "participant not found"
	}

	return c.JSON(http.StatusOK, RenameResponse{Success: res.Applied(), Message: message})
}
