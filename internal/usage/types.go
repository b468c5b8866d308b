package usage

import "time"

// RoutingKeyRecorded is published after every successful increment.
const RoutingKeyRecorded = "usage.recorded"

// RecordedEvent is the usage.recorded payload.
type RecordedEvent struct {
	UserID     string `json:"user_id"`
	RecordedAt string `json:"recorded_at"`
}

func newRecordedEvent(userID string, at time.Time) RecordedEvent {
	return RecordedEvent{UserID: userID, RecordedAt: at.UTC().Format(time.RFC3339)}
}
