package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ConfigurationError is raised when an adapter is constructed with missing or
// invalid static configuration. It is always returned before any network call.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on '%s': %s", e.Field, e.Message)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: message,
	}
}

// ResponseError carries an HTTP response the gateway could not interpret as a
// transaction result (any non-2xx status other than 4xx).
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected gateway response: status %d", e.StatusCode)
}

// NewResponseError creates a new response error
func NewResponseError(statusCode int, body string) *ResponseError {
	return &ResponseError{
		StatusCode: statusCode,
		Body:       body,
	}
}

// IsValidationError reports whether err wraps a ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConfigurationError reports whether err wraps a ConfigurationError
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsResponseError reports whether err wraps a ResponseError
func IsResponseError(err error) bool {
	var target *ResponseError
	return errors.As(err, &target)
}
