package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrNotFound          = errors.New("participant not found")
	ErrNameTaken         = errors.New("display name already in use")
	ErrAlreadyRegistered = errors.New("identity already registered")
)
