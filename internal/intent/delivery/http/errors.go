package http

import (
	"errors"
	"net/http"

	"github.com/fsarta/synapse/internal/intent"
)

const (
	MessageTextRequired   = "Text input is required"
	MessageUnsafeContent  = "Content flagged as unsafe"
	MessageParsingFailed  = "Parsing failed"
	MessageInvalidBody    = "Invalid request body"
	MessageInvalidIntent  = "Invalid intent"
	MessageNotDispatched  = "intent is not dispatchable"
	MessageCalendarDown   = "Calendar is not configured"
	MessageDispatchFailed = "Calendar dispatch failed"
)

// mapError translates pipeline errors into a status and the client-facing message.
// Provider details never reach the client.
func (h *handler) mapError(err error) (int, string) {
	switch intent.KindOf(err) {
	case intent.KindEmptyInput:
		return http.StatusBadRequest, MessageTextRequired
	case intent.KindSafetyBlocked:
		return http.StatusBadRequest, MessageUnsafeContent
	default:
		// malformed-output, invalid-schema, provider-unavailable
		return http.StatusInternalServerError, MessageParsingFailed
	}
}

// mapDispatchError handles the calendar route, where the intent comes from the client.
func (h *handler) mapDispatchError(err error) (int, string) {
	switch {
	case errors.Is(err, intent.ErrInvalidSchema):
		return http.StatusBadRequest, MessageInvalidIntent
	case errors.Is(err, intent.ErrNotDispatchable):
		return http.StatusBadRequest, MessageNotDispatched
	case errors.Is(err, intent.ErrCalendarUnavailable):
		return http.StatusServiceUnavailable, MessageCalendarDown
	case errors.Is(err, intent.ErrDispatchFailed):
		return http.StatusBadGateway, MessageDispatchFailed
	default:
		return http.StatusInternalServerError, MessageDispatchFailed
	}
}
