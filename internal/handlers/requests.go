package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RenameRequest is the DTO for the rename endpoint. The identity is supplied
// by the caller, not inferred from the transport. NewName is deliberately
// not required here: the chat service owns name validation so the caller
// gets a precise length/charset message instead of a generic binding error.
type RenameRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	NewName string `json:"new_name"`
}

// MessageRequest is the DTO for the stateless message echo endpoint.
type MessageRequest struct {
	Message string `json:"message" validate:"required"`
}
