package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Form errors
	ErrValidation       = errors.New("validation failed")
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrUnknownField     = errors.New("unknown field")

	// API errors
	ErrEmptyURL  = errors.New("URL cannot be empty")
	ErrTransport = errors.New("request could not be sent")
	ErrResponse  = errors.New("invalid API response")

	// Navigation errors
	ErrRouteNotFound = errors.New("route not found")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// File system errors
	ErrFileNotFound = errors.New("file not found")
)

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
