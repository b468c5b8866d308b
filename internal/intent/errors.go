package intent

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput          = errors.New("text input is required")
	ErrInvalidContext      = errors.New("context is not serializable")
	ErrSafetyBlocked       = errors.New("content flagged as unsafe")
	ErrMalformedOutput     = errors.New("malformed provider output")
	ErrInvalidSchema       = errors.New("provider output does not match intent schema")
	ErrProviderUnavailable = errors.New("provider unavailable")

	ErrNotDispatchable     = errors.New("intent is not dispatchable")
	ErrCalendarUnavailable = errors.New("calendar is not configured")
	ErrDispatchFailed      = errors.New("failed to create calendar event")
)

// ValidationKind names the first schema rule a candidate violated.
type ValidationKind string

const (
	InvalidIntent     ValidationKind = "invalid-intent"
	InvalidConfidence ValidationKind = "invalid-confidence"
	InvalidData       ValidationKind = "invalid-data"
	InvalidDatetime   ValidationKind = "invalid-datetime"
)

// ValidationError is returned by Validate. It matches ErrInvalidSchema with errors.Is.
type ValidationError struct {
	Kind   ValidationKind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NormalizationError carries the raw provider text that could not be parsed.
// RawOutput is for logs only and must never reach an end user.
type NormalizationError struct {
	RawOutput string
	Err       error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedOutput, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

func (e *NormalizationError) Is(target error) bool {
	return target == ErrMalformedOutput
}

// ErrorKind is the pipeline-level classification of a failed extraction.
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindEmptyInput          ErrorKind = "empty-input"
	KindSafetyBlocked       ErrorKind = "safety-blocked"
	KindMalformedOutput     ErrorKind = "malformed-output"
	KindInvalidSchema       ErrorKind = "invalid-schema"
	KindProviderUnavailable ErrorKind = "provider-unavailable"
	KindUnknown             ErrorKind = "unknown"
)

// KindOf classifies err. Context serialization failures count as empty input
// since both are rejected before the provider is called.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrInvalidContext):
		return KindEmptyInput
	case errors.Is(err, ErrSafetyBlocked):
		return KindSafetyBlocked
	case errors.Is(err, ErrMalformedOutput):
		return KindMalformedOutput
	case errors.Is(err, ErrInvalidSchema):
		return KindInvalidSchema
	case errors.Is(err, ErrProviderUnavailable):
		return KindProviderUnavailable
	default:
		return KindUnknown
	}
}

// ValidationKindOf returns the schema sub-kind wrapped in err, or "".
func ValidationKindOf(err error) ValidationKind {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	return ""
}
