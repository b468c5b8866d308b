package http

import (
	"github.com/fsarta/synapse/internal/intent"
	"github.com/fsarta/synapse/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Text    string         `json:"text"`
	Context map[string]any `json:"context"`
}

func (r parseReq) toInput(sc model.Scope) intent.ExtractInput {
	return intent.ExtractInput{
		Text:    r.Text,
		Context: r.Context,
		Scope:   sc,
	}
}

// dispatchReq is the intent as the client echoes it back. It stays untyped so
// shape errors surface as schema violations rather than bind errors.
type dispatchReq map[string]any

// --- Response DTOs ---

type intentDataResp struct {
	Title    string  `json:"title"`
	Datetime *string `json:"datetime"`
}

type intentResp struct {
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Data       intentDataResp `json:"data"`
}

func newIntentResp(i intent.Intent) intentResp {
	return intentResp{
		Intent:     string(i.Intent),
		Confidence: i.Confidence,
		Data: intentDataResp{
			Title:    i.Data.Title,
			Datetime: i.Data.Datetime,
		},
	}
}

type dispatchResp struct {
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link"`
}

func newDispatchResp(out intent.DispatchOutput) dispatchResp {
	return dispatchResp{EventID: out.EventID, HTMLLink: out.HTMLLink}
}
