package usage

import "context"

// Meter records one unit of consumption for a user.
type Meter interface {
	Increment(ctx context.Context, userID string) error
}

// Counter is the store side of the meter: an atomic +1 on the user's row.
type Counter interface {
	IncrementDailyActions(ctx context.Context, userID string) error
}

// Publisher emits usage events. Optional.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}
