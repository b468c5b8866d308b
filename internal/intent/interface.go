package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Extract runs prompt -> provider -> normalize -> validate once, without retries.
	// It never records usage; callers meter successful results themselves.
	Extract(ctx context.Context, input ExtractInput) (Intent, error)

	// Dispatch creates a calendar event for a create_event intent.
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)
}
