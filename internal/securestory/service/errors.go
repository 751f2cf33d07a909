package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
)

var (
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenAlreadyUsed = errors.New("token already used")
	ErrTokenExpired     = errors.New("token expired")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	ErrProjectExists   = errors.New("project slug already exists")
	ErrProjectNotFound = errors.New("project not found")
	ErrFindingNotFound = errors.New("finding not found")
	ErrFindingNotOpen  = errors.New("finding is not open")

	// ErrValidation is the parent of every ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ErrInvalidWindow is returned for a dashboard window outside 1..365 days.
var ErrInvalidWindow = &ValidationError{
	Field:   "days",
	Message: fmt.Sprintf("must be an integer between 1 and %d", domain.MaxWindowDays),
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// Caller identifies the authenticated principal of a request. A nil *Caller
// is an anonymous request.
type Caller struct {
	UserID string
	Role   domain.Role
}

func (c *Caller) canWrite() bool {
	return c != nil && c.Role.CanWrite()
}

// requireWriter is the admin|analyst gate shared by mutating operations.
func requireWriter(c *Caller) error {
	if c == nil {
		return ErrUnauthorized
	}
	if !c.canWrite() {
		return ErrForbidden
	}
	return nil
}

// clock returns now() in UTC from the optional override.
func clock(now func() time.Time) time.Time {
	if now != nil {
		return now().UTC()
	}
	return time.Now().UTC()
}
