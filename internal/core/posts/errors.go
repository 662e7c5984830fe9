package posts

import (
	"errors"
	"fmt"
)

// Domain errors returned by the repository. The messages are caller-facing
// and stable, handlers pass them through to clients unchanged.
var (
	// ErrNotFound is returned when a post does not exist or was soft-deleted
	// Dislike also returns it when the like itself is missing.
	ErrNotFound = &NotFoundError{Message: "Post not found"}

	// ErrNotFoundOrDeleted is returned by Delete; it does not tell apart a
	// missing post, a post owned by someone else and an already deleted post
	ErrNotFoundOrDeleted = &NotFoundError{Message: "Post not found or already deleted"}

	// ErrAlreadyViewed is returned when the viewer has already viewed the post
	ErrAlreadyViewed = &ConflictError{Message: "Post already viewed"}

	// ErrAlreadyLiked is returned when the viewer has already liked the post
	ErrAlreadyLiked = &ConflictError{Message: "Post already liked"}
)

// NotFoundError represents a targeted row that is absent, deleted or not owned by the caller
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// ConflictError represents a repeated action rejected by a uniqueness constraint
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError creates a new conflict error
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// IsConflict checks if error is a conflict error
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// ValidationError represents a validation error with field context
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
