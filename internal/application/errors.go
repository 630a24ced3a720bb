package application

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized means the presented bearer token matches no principal
	// of the required kind.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	// ErrSearchDisabled is returned when no search backend is configured.
	ErrSearchDisabled = errors.New("search is not configured")
)

// FieldError is an ErrInvalidInput carrying the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// Details renders the error the same way validation.ToDetails does.
func (e *FieldError) Details() map[string]string {
	return map[string]string{e.Field: e.Message}
}
