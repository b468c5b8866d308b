package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fsarta/synapse/internal/intent"
)

// Extract builds the prompt, calls the provider once and validates its answer.
// The first failing stage decides the returned error.
func (uc *implUseCase) Extract(ctx context.Context, input intent.ExtractInput) (intent.Intent, error) {
	if strings.TrimSpace(input.Text) == "" {
		return intent.Intent{}, intent.ErrEmptyInput
	}

	prompt, err := intent.BuildPrompt(input.Text, input.Context)
	if err != nil {
		return intent.Intent{}, err
	}

	out := uc.provider.Invoke(ctx, prompt)

	candidate, err := intent.Normalize(out)
	if err != nil {
		var nErr *intent.NormalizationError
		if errors.As(err, &nErr) {
			uc.l.Errorf(ctx, "intent.usecase.Extract: user=%s provider=%s malformed output: %v raw=%q",
				input.Scope.UserID, out.ProviderName, nErr.Err, nErr.RawOutput)
		} else {
			uc.l.Warnf(ctx, "intent.usecase.Extract: user=%s provider=%s: %v", input.Scope.UserID, out.ProviderName, err)
		}
		return intent.Intent{}, err
	}

	result, err := intent.Validate(candidate)
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.Extract: user=%s provider=%s schema violation: %v raw=%q",
			input.Scope.UserID, out.ProviderName, err, out.RawOutput)
		return intent.Intent{}, err
	}

	uc.l.Debugf(ctx, "intent.usecase.Extract: user=%s intent=%s confidence=%.2f",
		input.Scope.UserID, result.Intent, result.Confidence)
	return result, nil
}
