package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/service"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrVocabularyNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrWordExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrInvalidOutcome),
		errors.Is(err, service.ErrInvalidAccent),
		errors.Is(err, service.ErrInvalidSnapshot),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyWord),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrNegativeCount),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Upstream failures
	case errors.Is(err, service.ErrAudioUnavailable):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, service.ErrVocabularyNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrAudioClipNotFound):
		return "Audio clip not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Conflict errors
	case errors.Is(err, service.ErrWordExists),
		errors.Is(err, store.ErrDuplicate):
		return "Word already exists"

	// Bad request errors
	case errors.Is(err, service.ErrInvalidOutcome):
		return "Invalid review outcome"

	case errors.Is(err, service.ErrInvalidAccent):
		return "Invalid accent"

	case errors.Is(err, service.ErrInvalidSnapshot):
		return "Invalid sync snapshot"

	case errors.Is(err, domain.ErrEmptyWord):
		return "Word is required"

	case errors.Is(err, domain.ErrEmptyDescription):
		return "Description is required"

	case errors.Is(err, domain.ErrNegativeCount):
		return "Counts must not be negative"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Upstream failures
	case errors.Is(err, service.ErrAudioUnavailable):
		return "Pronunciation audio is currently unavailable"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'CreateVocabularyRequest.Word' Error:Field validation for 'Word' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "gte":
		return "value too small"
	default:
		return "validation failed"
	}
}
