// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyWord is returned when a vocabulary word is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrEmptyDescription is returned when a vocabulary description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidInterval is returned when a review interval is negative.
	ErrInvalidInterval = errors.New("interval must be greater than or equal to 0")

	// ErrInvalidEaseFactor is returned when an ease factor is out of range.
	ErrInvalidEaseFactor = errors.New("ease factor must be between 1.3 and 2.5")

	// ErrInvalidStatus is returned when a vocabulary status is not valid.
	ErrInvalidStatus = errors.New("invalid vocabulary status")

	// ErrInvalidReviewOutcome is returned when a review outcome is not valid.
	ErrInvalidReviewOutcome = errors.New("invalid review outcome")

	// ErrNegativeCount is returned when a review counter is negative.
	ErrNegativeCount = errors.New("review counters cannot be negative")

	// ErrEmptyAudioKey is returned when an audio clip key is empty.
	ErrEmptyAudioKey = errors.New("audio key cannot be empty")

	// ErrEmptyAudioData is returned when an audio clip carries no payload.
	ErrEmptyAudioData = errors.New("audio data cannot be empty")

	// ErrInvalidAccent is returned when an audio accent is not uk or us.
	ErrInvalidAccent = errors.New("invalid accent")
)
