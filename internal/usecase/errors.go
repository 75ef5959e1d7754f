package usecase

import (
	"errors"
	"fmt"

	"care-booking/pkg/utils"
)

var (
	// ErrNotFound is returned when a booking does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("booking not found")

	// ErrUnauthorized is returned when the caller lacks permission for the
	// requested operation.
	ErrUnauthorized = errors.New("not authorized")

	// ErrInvalidTransition is returned when the requested status change is
	// not permitted from the booking's current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrServiceUnknown is returned when a service id is not in the catalog.
	ErrServiceUnknown = errors.New("service not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNIDTaken is returned when registering an already-used NID.
	ErrNIDTaken = errors.New("nid already registered")
)

// ValidationError reports the specific missing or invalid fields of a
// request. Fully recoverable by resubmission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
