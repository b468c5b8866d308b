package llmprovider

import "errors"

// ErrorTag classifies a failed provider call.
type ErrorTag string

const (
	TagNone           ErrorTag = "none"
	TagSafetyBlocked  ErrorTag = "safety-blocked"
	TagTransportError ErrorTag = "transport-error"
)

// Outcome is the result of exactly one provider invocation.
// RawOutput is only meaningful when Tag is TagNone.
type Outcome struct {
	RawOutput    string
	Tag          ErrorTag
	Err          error
	ProviderName string
	ModelName    string
}

// Failed reports whether the call produced no usable output.
func (o Outcome) Failed() bool {
	return o.Tag != TagNone
}

// classify maps a provider error to its tag. Anything that is not a safety
// block is a transport problem from the caller's point of view.
func classify(err error) ErrorTag {
	switch {
	case err == nil:
		return TagNone
	case errors.Is(err, ErrSafetyBlocked):
		return TagSafetyBlocked
	default:
		return TagTransportError
	}
}
