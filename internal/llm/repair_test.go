package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepair_BalancedInputUnchanged(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"a": 1}`,
		`{"a": [1, 2, 3], "b": {"c": "d"}}`,
		`{"text": "braces inside strings { [ } ] are ignored"}`,
		`{"esc": "a \"quoted\" word"}`,
	}
	for _, in := range inputs {
		assert.Equal(t, in, Repair(in), "input: %s", in)
	}
}

func TestRepair_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a": [1, 2, {"b": "unterminated`,
		"```json\n{\"a\": 1}\n```",
		`Here is your plan: {"workouts": [{"name": "Run",`,
		`{"a": [1, 2,`,
		`{"a": 1,}`,
		`no json here at all`,
	}
	for _, in := range inputs {
		once := Repair(in)
		assert.Equal(t, once, Repair(once), "input: %s", in)
	}
}

func TestRepair_ClosesTruncatedStructures(t *testing.T) {
	repaired := Repair(`{"a": [1, 2, {"b": "unterminated`)

	var parsed struct {
		A []json.RawMessage `json:"a"`
	}
	require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
	require.Len(t, parsed.A, 3)

	var third struct {
		B string `json:"b"`
	}
	require.NoError(t, json.Unmarshal(parsed.A[2], &third))
	assert.Equal(t, "unterminated", third.B)
}

func TestRepair_StripsCodeFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, Repair("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, Repair("```\n{\"a\": 1}\n```"))
}

func TestRepair_DiscardsLeadingProse(t *testing.T) {
	got := Repair(`Sure! Here is the training week you asked for: {"weekNumber": 3}`)
	assert.Equal(t, `{"weekNumber": 3}`, got)
}

func TestRepair_TrailingCommas(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a": 1,}`, `{"a": 1}`},
		{`{"a": [1, 2,]}`, `{"a": [1, 2]}`},
		{`{"a": [1, 2,`, `{"a": [1, 2]}`},
		{`{"a": 1,`, `{"a": 1}`},
		{"{\"a\": [1, 2, \n]}", "{\"a\": [1, 2 \n]}"},
	}
	for _, tt := range tests {
		got := Repair(tt.in)
		assert.Equal(t, tt.want, got, "input: %s", tt.in)

		var v any
		require.NoError(t, json.Unmarshal([]byte(got), &v), "repaired output must parse: %s", got)
	}
}

func TestRepair_UnterminatedStringOnly(t *testing.T) {
	got := Repair(`{"note": "got cut off mid sent`)
	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, "got cut off mid sent", parsed["note"])
}

func TestRepair_TruncatedWorkoutList(t *testing.T) {
	// Shape of a real truncated generation: the workouts array and its last
	// object are both unclosed.
	raw := `{
  "weekNumber": 2,
  "theme": "Aerobic Base",
  "workouts": [
    {"dayOfWeek": "monday", "type": "run", "name": "Easy Run", "duration": 45},
    {"dayOfWeek": "wednesday", "type": "bike", "name": "Spin", "duration": 60,
     "purpose": "Recovery spin to flush`

	got := Repair(raw)
	var parsed struct {
		WeekNumber int `json:"weekNumber"`
		Workouts   []struct {
			Name string `json:"name"`
		} `json:"workouts"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, 2, parsed.WeekNumber)
	require.Len(t, parsed.Workouts, 2)
	assert.Equal(t, "Spin", parsed.Workouts[1].Name)
}

func TestRepair_NoJSONPresent(t *testing.T) {
	// Nothing to repair; the strict parser downstream reports the failure.
	got := Repair("I could not generate a plan this time.")
	assert.Equal(t, "I could not generate a plan this time.", got)
}
