package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors returned by repository implementations
var (
	// ErrDuplicateID is returned by Add when the entity's id is already stored
	ErrDuplicateID = errors.New("entity with this id already exists")

	// ErrNoSuchEntity is returned by Update and Delete when no stored entity
	// matches the given id
	ErrNoSuchEntity = errors.New("no entity with this id")
)

// ValidationError represents a structurally invalid caller argument. It is
// always detected before any repository access, so a failed validation has no
// partial side effects.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// NotFoundError represents a well-formed reference to a resource that does
// not exist at the time of lookup; distinct from ValidationError because the
// input itself was valid.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewPostNotFoundError creates a not found error for a post id
func NewPostNotFoundError(id uuid.UUID) error {
	return &NotFoundError{Resource: "post", ID: id}
}

// NewCommentNotFoundError creates a not found error for a comment id
func NewCommentNotFoundError(id uuid.UUID) error {
	return &NotFoundError{Resource: "comment", ID: id}
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}
