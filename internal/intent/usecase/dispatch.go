package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fsarta/synapse/internal/intent"
	"github.com/fsarta/synapse/pkg/gcalendar"
)

const (
	defaultEventDuration = time.Hour
	eventDescription     = "Created by Synapse"
	dateOnlyLen          = len("2006-01-02")
)

// Dispatch turns a create_event intent into a Google Calendar event.
// The intent is validated again since it comes back from the client.
func (uc *implUseCase) Dispatch(ctx context.Context, input intent.DispatchInput) (intent.DispatchOutput, error) {
	if uc.calendar.Client == nil {
		return intent.DispatchOutput{}, intent.ErrCalendarUnavailable
	}

	validated, err := intent.Validate(input.Intent.Candidate())
	if err != nil {
		return intent.DispatchOutput{}, err
	}
	if validated.Intent != intent.TypeCreateEvent || validated.Data.Datetime == nil {
		return intent.DispatchOutput{}, intent.ErrNotDispatchable
	}

	raw := *validated.Data.Datetime
	start, ok := intent.ParseISO8601(raw, uc.calendar.Location)
	if !ok {
		return intent.DispatchOutput{}, intent.ErrNotDispatchable
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendar.CalendarID,
		Summary:     validated.Data.Title,
		Description: eventDescription,
		StartTime:   start,
		EndTime:     start.Add(defaultEventDuration),
		Timezone:    uc.calendar.Location.String(),
	}
	if len(raw) == dateOnlyLen {
		req.AllDay = true
		req.EndTime = start.AddDate(0, 0, 1)
	}

	event, err := uc.calendar.Client.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.Dispatch: user=%s: %v", input.Scope.UserID, err)
		return intent.DispatchOutput{}, fmt.Errorf("%w: %v", intent.ErrDispatchFailed, err)
	}

	uc.l.Infof(ctx, "intent.usecase.Dispatch: user=%s created event %s", input.Scope.UserID, event.ID)
	return intent.DispatchOutput{EventID: event.ID, HTMLLink: event.HtmlLink}, nil
}
