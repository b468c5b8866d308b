package intent

import "github.com/fsarta/synapse/internal/model"

// Type is the closed set of actions the extractor can detect.
type Type string

const (
	TypeCreateEvent Type = "create_event"
	TypeCreateTask  Type = "create_task"
	TypeNone        Type = "none"
)

// Valid reports whether t is one of the known intent types.
func (t Type) Valid() bool {
	switch t {
	case TypeCreateEvent, TypeCreateTask, TypeNone:
		return true
	}
	return false
}

// Intent is the validated extraction result. It is serialized to clients as is.
type Intent struct {
	Intent     Type    `json:"intent"`
	Confidence float64 `json:"confidence"`
	Data       Data    `json:"data"`
}

// Data carries the intent payload. Datetime is nil when the model found no time.
type Data struct {
	Title    string  `json:"title"`
	Datetime *string `json:"datetime"`
}

// Candidate is a decoded provider answer that has not been validated yet.
type Candidate map[string]any

// Candidate converts the Intent back to its unvalidated form.
func (i Intent) Candidate() Candidate {
	var dt any
	if i.Data.Datetime != nil {
		dt = *i.Data.Datetime
	}
	return Candidate{
		"intent":     string(i.Intent),
		"confidence": i.Confidence,
		"data": map[string]any{
			"title":    i.Data.Title,
			"datetime": dt,
		},
	}
}

// --- UseCase Inputs ---

type ExtractInput struct {
	Text    string
	Context map[string]any
	Scope   model.Scope
}

type DispatchInput struct {
	Intent Intent
	Scope  model.Scope
}

// --- UseCase Outputs ---

type DispatchOutput struct {
	EventID  string
	HTMLLink string
}
