package intent

import (
	"encoding/json"
	"math"
	"time"
)

// iso8601Layouts are the ISO-8601 shapes accepted for data.datetime.
// time.Parse accepts fractional seconds after the seconds field for each of them.
var iso8601Layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Validate checks c against the intent schema. Rules run in a fixed order and
// the first violation is returned. Unknown fields are dropped.
func Validate(c Candidate) (Intent, error) {
	rawType, ok := c["intent"].(string)
	if !ok || !Type(rawType).Valid() {
		return Intent{}, &ValidationError{Kind: InvalidIntent, Field: "intent", Reason: "must be one of create_event, create_task, none"}
	}

	confidence, ok := toFloat(c["confidence"])
	if !ok || math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return Intent{}, &ValidationError{Kind: InvalidConfidence, Field: "confidence", Reason: "must be a number in [0, 1]"}
	}

	data, ok := c["data"].(map[string]any)
	if !ok {
		return Intent{}, &ValidationError{Kind: InvalidData, Field: "data", Reason: "must be an object"}
	}
	title, ok := data["title"].(string)
	if !ok {
		return Intent{}, &ValidationError{Kind: InvalidData, Field: "data.title", Reason: "must be a string"}
	}

	var datetime *string
	switch v := data["datetime"].(type) {
	case nil:
	case string:
		if !IsISO8601(v) {
			return Intent{}, &ValidationError{Kind: InvalidDatetime, Field: "data.datetime", Reason: "must be an ISO-8601 string or null"}
		}
		dt := v
		datetime = &dt
	default:
		return Intent{}, &ValidationError{Kind: InvalidDatetime, Field: "data.datetime", Reason: "must be an ISO-8601 string or null"}
	}

	return Intent{
		Intent:     Type(rawType),
		Confidence: confidence,
		Data: Data{
			Title:    title,
			Datetime: datetime,
		},
	}, nil
}

// IsISO8601 reports whether s parses with one of the accepted layouts.
func IsISO8601(s string) bool {
	_, ok := ParseISO8601(s, time.UTC)
	return ok
}

// ParseISO8601 parses s. Values without an offset are interpreted in loc.
func ParseISO8601(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range iso8601Layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
