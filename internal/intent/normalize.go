package intent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/fsarta/synapse/pkg/llmprovider"
)

const fence = "```"

// Normalize turns a provider outcome into a Candidate.
// Tagged outcomes short-circuit without looking at the raw output.
func Normalize(out llmprovider.Outcome) (Candidate, error) {
	switch out.Tag {
	case llmprovider.TagSafetyBlocked:
		return nil, fmt.Errorf("%w: %v", ErrSafetyBlocked, out.Err)
	case llmprovider.TagTransportError:
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, out.Err)
	}

	body := stripFences(out.RawOutput)
	if body == "" {
		return nil, &NormalizationError{RawOutput: out.RawOutput, Err: errors.New("empty output")}
	}

	var decoded any
	if err := sonic.UnmarshalString(body, &decoded); err != nil {
		return nil, &NormalizationError{RawOutput: out.RawOutput, Err: err}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &NormalizationError{
			RawOutput: out.RawOutput,
			Err:       fmt.Errorf("expected a JSON object, got %T", decoded),
		}
	}

	return Candidate(obj), nil
}

// stripFences removes the markdown fence wrapped around the payload.
// Output that already starts as a JSON document is only trimmed, so backticks
// inside string values survive. Otherwise the first fence opens the payload and
// the last fence closes it; prose before or after them is dropped.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return s
	}

	open := strings.Index(s, fence)
	if open < 0 {
		return s
	}
	body := strings.TrimLeftFunc(s[open+len(fence):], isLangTagRune)

	// A last fence followed by JSON punctuation sits inside a truncated payload.
	if end := strings.LastIndex(body, fence); end >= 0 && !strings.ContainsAny(body[end+len(fence):], "{}[]") {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// isLangTagRune matches the info string after an opening fence, e.g. "json".
func isLangTagRune(r rune) bool {
	return r == '_' || r == '-' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
