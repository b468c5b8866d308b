package usage

import (
	"context"
	"errors"
	"time"

	"github.com/fsarta/synapse/pkg/log"
)

var ErrMissingUser = errors.New("usage: user id is required")

type implMeter struct {
	l       log.Logger
	counter Counter
	pub     Publisher
	now     func() time.Time
}

// New creates a Meter. pub may be nil.
func New(l log.Logger, counter Counter, pub Publisher) Meter {
	return &implMeter{l: l, counter: counter, pub: pub, now: time.Now}
}

// Increment bumps the stored counter and then announces it.
// A failed announcement does not fail the increment.
func (m *implMeter) Increment(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingUser
	}
	if err := m.counter.IncrementDailyActions(ctx, userID); err != nil {
		return err
	}
	if m.pub == nil {
		return nil
	}
	if err := m.pub.Publish(ctx, RoutingKeyRecorded, newRecordedEvent(userID, m.now())); err != nil {
		m.l.Warnf(ctx, "usage.Increment: publish %s for user=%s: %v", RoutingKeyRecorded, userID, err)
	}
	return nil
}
