package intent

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() Candidate {
	return Candidate{
		"intent":     "create_event",
		"confidence": 0.9,
		"data": map[string]any{
			"title":    "Meeting",
			"datetime": "2025-01-02T15:00:00Z",
		},
	}
}

func with(mut func(c Candidate)) Candidate {
	c := valid()
	c["data"] = map[string]any{"title": "Meeting", "datetime": "2025-01-02T15:00:00Z"}
	mut(c)
	return c
}

func TestValidate_Accepts(t *testing.T) {
	got, err := Validate(valid())
	require.NoError(t, err)

	dt := "2025-01-02T15:00:00Z"
	assert.Equal(t, Intent{Intent: TypeCreateEvent, Confidence: 0.9, Data: Data{Title: "Meeting", Datetime: &dt}}, got)
}

func TestValidate_Intent(t *testing.T) {
	for _, v := range []any{"delete_event", "", "CREATE_EVENT", nil, 1} {
		_, err := Validate(with(func(c Candidate) { c["intent"] = v }))
		assert.Equal(t, InvalidIntent, ValidationKindOf(err), "%v", v)
		assert.Equal(t, KindInvalidSchema, KindOf(err))
	}

	_, err := Validate(with(func(c Candidate) { delete(c, "intent") }))
	assert.Equal(t, InvalidIntent, ValidationKindOf(err))

	for _, v := range []Type{TypeCreateEvent, TypeCreateTask, TypeNone} {
		_, err := Validate(with(func(c Candidate) { c["intent"] = string(v) }))
		assert.NoError(t, err)
	}
}

func TestValidate_ConfidenceBoundaries(t *testing.T) {
	for _, v := range []any{-0.1, 1.5, math.NaN(), "0.5", true, nil} {
		_, err := Validate(with(func(c Candidate) { c["confidence"] = v }))
		assert.Equal(t, InvalidConfidence, ValidationKindOf(err), "%v", v)
	}
	for _, v := range []any{0.0, 1.0, 0, 1, json.Number("0.75")} {
		_, err := Validate(with(func(c Candidate) { c["confidence"] = v }))
		assert.NoError(t, err, "%v", v)
	}
}

func TestValidate_Data(t *testing.T) {
	cases := []Candidate{
		with(func(c Candidate) { delete(c, "data") }),
		with(func(c Candidate) { c["data"] = "Meeting" }),
		with(func(c Candidate) { c["data"] = map[string]any{"datetime": nil} }),
		with(func(c Candidate) { c["data"] = map[string]any{"title": 3} }),
		with(func(c Candidate) { c["data"] = map[string]any{"title": nil} }),
	}
	for _, c := range cases {
		_, err := Validate(c)
		assert.Equal(t, InvalidData, ValidationKindOf(err), "%v", c)
	}

	got, err := Validate(with(func(c Candidate) { c["data"] = map[string]any{"title": ""} }))
	require.NoError(t, err)
	assert.Equal(t, "", got.Data.Title)
	assert.Nil(t, got.Data.Datetime)
}

func TestValidate_Datetime(t *testing.T) {
	accepted := []string{
		"2025-01-02T15:00:00Z",
		"2025-01-02T15:00:00.123Z",
		"2025-01-02T15:00:00+07:00",
		"2025-01-02T15:00:00+0700",
		"2025-01-02T15:00:00+01",
		"2025-01-02T15:00:00-05",
		"2025-01-02T15:00:00",
		"2025-01-02T15:00",
		"2025-01-02",
	}
	for _, v := range accepted {
		got, err := Validate(with(func(c Candidate) { c["data"].(map[string]any)["datetime"] = v }))
		require.NoError(t, err, v)
		require.NotNil(t, got.Data.Datetime)
		assert.Equal(t, v, *got.Data.Datetime, "value must pass through untouched")
	}

	rejected := []any{"", "tomorrow at 3pm", "2025-13-02T15:00:00Z", "02/01/2025", 1735830000, map[string]any{}}
	for _, v := range rejected {
		_, err := Validate(with(func(c Candidate) { c["data"].(map[string]any)["datetime"] = v }))
		assert.Equal(t, InvalidDatetime, ValidationKindOf(err), "%v", v)
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	c := Candidate{
		"intent":     "delete_event",
		"confidence": 7.0,
		"data":       "nope",
	}
	_, err := Validate(c)
	assert.Equal(t, InvalidIntent, ValidationKindOf(err))

	c["intent"] = "none"
	_, err = Validate(c)
	assert.Equal(t, InvalidConfidence, ValidationKindOf(err))

	c["confidence"] = 0.5
	_, err = Validate(c)
	assert.Equal(t, InvalidData, ValidationKindOf(err))
}

func TestValidate_DropsExtraFieldsAndIsIdempotent(t *testing.T) {
	c := valid()
	c["reasoning"] = "the user mentioned a meeting"
	c["data"].(map[string]any)["location"] = "Room 1"

	first, err := Validate(c)
	require.NoError(t, err)

	second, err := Validate(first.Candidate())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"create_event","confidence":0.9,"data":{"title":"Meeting","datetime":"2025-01-02T15:00:00Z"}}`, string(b))
}

func TestValidate_DoesNotShareCandidateMemory(t *testing.T) {
	c := valid()
	got, err := Validate(c)
	require.NoError(t, err)

	c["data"].(map[string]any)["datetime"] = "2030-01-01"
	assert.Equal(t, "2025-01-02T15:00:00Z", *got.Data.Datetime)
}

func TestParseISO8601_UsesLocationWithoutOffset(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)

	ts, ok := ParseISO8601("2025-01-02T15:00:00", loc)
	require.True(t, ok)
	assert.Equal(t, 8, ts.UTC().Hour())

	ts, ok = ParseISO8601("2025-01-02T15:00:00Z", loc)
	require.True(t, ok)
	assert.Equal(t, 15, ts.UTC().Hour())
}

func TestParseISO8601_HourOnlyOffset(t *testing.T) {
	ts, ok := ParseISO8601("2025-01-02T15:00:00+01", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 14, ts.UTC().Hour())
}
