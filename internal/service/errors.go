package service

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers map these onto HTTP status codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrNotFound           = errors.New("not found")
	ErrComplaintNotFound  = fmt.Errorf("complaint %w", ErrNotFound)
	ErrStaffNotFound      = fmt.Errorf("staff %w", ErrNotFound)
	ErrNotAssigned        = errors.New("complaint is not assigned to this staff member")
	ErrConflict           = errors.New("duplicate unique field")
	ErrValidation         = errors.New("validation failed")

	ErrImageRequired    = fmt.Errorf("%w: image is required", ErrValidation)
	ErrImageTooLarge    = fmt.Errorf("%w: image too large", ErrValidation)
	ErrUnsupportedImage = fmt.Errorf("%w: unsupported image type", ErrValidation)
)

// FieldError is a ValidationError tied to one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func invalidField(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
