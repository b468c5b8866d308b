package usecase

import (
	"context"
	"time"

	"github.com/fsarta/synapse/pkg/gcalendar"
	"github.com/fsarta/synapse/pkg/llmprovider"
	"github.com/fsarta/synapse/pkg/log"
)

// Invoker performs one bounded call to the primary LLM provider.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) llmprovider.Outcome
}

// CalendarConfig enables Dispatch. A nil Client leaves dispatch disabled.
type CalendarConfig struct {
	Client     gcalendar.ICalendar
	CalendarID string
	Location   *time.Location
}

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	l        log.Logger
	provider Invoker
	calendar CalendarConfig
}

// New creates a new intent UseCase implementation.
func New(l log.Logger, provider Invoker, calendar CalendarConfig) *implUseCase {
	if calendar.Location == nil {
		calendar.Location = time.UTC
	}
	if calendar.CalendarID == "" {
		calendar.CalendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:        l,
		provider: provider,
		calendar: calendar,
	}
}
