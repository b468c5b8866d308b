package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrSafetyBlocked is returned when the prompt or the candidate was blocked by Gemini safety filters.
	ErrSafetyBlocked = errors.New("gemini: content blocked by safety filters")

	// ErrNoCandidates is returned when the API answered without any candidate.
	ErrNoCandidates = errors.New("gemini: response has no candidates")
)

// APIError is a non-200 answer from the Gemini API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
}
