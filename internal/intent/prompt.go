package intent

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// contextJSON serializes with sorted map keys so equal contexts render identically.
var contextJSON = sonic.Config{SortMapKeys: true}.Froze()

const promptTemplate = `Analyze this text and extract actionable intent.

Text: "%s"
Context: %s

Desired Schema:
{
  "intent": "create_event" | "create_task" | "none",
  "confidence": number (0.0-1.0),
  "data": {
    "title": "string",
    "datetime": "ISO8601 string or null"
  }
}

Respond with a single JSON object matching the schema and nothing else.`

// BuildPrompt renders text and ctx into the provider instruction.
// The result depends only on its inputs. A nil ctx renders as {}.
func BuildPrompt(text string, ctx map[string]any) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	serialized := "{}"
	if len(ctx) > 0 {
		b, err := contextJSON.Marshal(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidContext, err)
		}
		serialized = string(b)
	}

	return fmt.Sprintf(promptTemplate, text, serialized), nil
}
