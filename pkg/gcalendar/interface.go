package gcalendar

import "context"

// ICalendar is the subset of the Calendar API the service uses.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

var _ ICalendar = (*Client)(nil)
