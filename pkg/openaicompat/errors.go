package openaicompat

import "errors"

var (
	// ErrContentFiltered is returned when the backend's moderation refused to answer.
	ErrContentFiltered = errors.New("openaicompat: content filtered")

	// ErrEmptyChoices is returned when the completion carries no choice.
	ErrEmptyChoices = errors.New("openaicompat: completion has no choices")
)
