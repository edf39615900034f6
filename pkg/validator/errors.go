package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired marks a required field that is missing from the input.
	ErrFieldRequired = errors.New("field is required")

	// ErrUnknownField marks an input key that the schema does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidFormat is returned when input cannot be decoded into the expected shape.
	ErrInvalidFormat = errors.New("invalid format")
)
