package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for
// with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrVocabularyNotFound indicates that the requested word does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrVocabularyNotFound = errors.New("vocabulary not found")

	// ErrWordExists indicates that the word is already in the collection.
	// API layer should map this to HTTP 409 Conflict.
	ErrWordExists = errors.New("word already exists")

	// ErrInvalidOutcome indicates an unrecognized review outcome was submitted.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidOutcome = errors.New("invalid review outcome")

	// ErrInvalidAccent indicates an unsupported pronunciation accent.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidAccent = errors.New("invalid accent")

	// ErrAudioUnavailable indicates the upstream voice service could not
	// provide audio for the word. API layer should map this to HTTP 502.
	ErrAudioUnavailable = errors.New("audio unavailable")

	// ErrInvalidSnapshot indicates a sync snapshot that cannot be merged,
	// for example one carrying invalid vocabulary entries.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// ServiceError wraps errors from a service with additional context.
// This allows consumers to differentiate between different types of service
// errors using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit_review", "merge_snapshot")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
