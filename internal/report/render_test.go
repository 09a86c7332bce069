package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/types"
)

func TestPrintValidation_NoColor(t *testing.T) {
	var buf bytes.Buffer
	PrintValidation(&buf, "79927398713", true, PrintOptions{NoColor: true})
	PrintValidation(&buf, "79927398710", false, PrintOptions{NoColor: true})
	assert.Equal(t, "Validation Result: 79927398713: Valid\nValidation Result: 79927398710: Invalid\n", buf.String())
}

func TestPrintCheckDigit(t *testing.T) {
	var buf bytes.Buffer
	PrintCheckDigit(&buf, "7992739871", 3, PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "Generated Check Digit: 3")
	assert.Contains(t, out, "Full number: 79927398713")
}

func TestPrintTrace(t *testing.T) {
	tr := types.Trace{
		Input: "18",
		Steps: []types.Step{
			{Position: 0, Index: 1, Digit: 8, Value: 8, Running: 8},
			{Position: 1, Index: 0, Digit: 1, Doubled: true, Value: 2, Running: 10},
		},
		Checksum: 10,
		Valid:    true,
	}
	var buf bytes.Buffer
	require.NoError(t, PrintTrace(&buf, tr, PrintOptions{NoColor: true}))
	out := buf.String()
	assert.Contains(t, out, "Unchanged 8")
	assert.Contains(t, out, "Doubling 1 gives 2 -> Adjusted to 2")
	assert.Contains(t, out, "Total checksum: 10")
	assert.Contains(t, out, "Result: Valid")
	assert.Less(t, strings.Index(out, "Unchanged 8"), strings.Index(out, "Doubling 1"))
}

func TestStepAction_AdjustsOverNine(t *testing.T) {
	assert.Equal(t, "Doubling 7 gives 14 -> Adjusted to 5", StepAction(types.Step{Digit: 7, Doubled: true, Value: 5}))
	assert.Equal(t, "Unchanged 7", StepAction(types.Step{Digit: 7, Value: 7}))
}

func TestPrintCorrections_None(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintCorrections(&buf, []types.Correction{}, PrintOptions{NoColor: true}))
	assert.Equal(t, "No common errors detected.\n", buf.String())
}

func TestPrintCorrections_Table(t *testing.T) {
	cs := []types.Correction{
		{Kind: types.KindSubstitution, Index: 0, Replacement: 9, Candidate: "9100"},
		{Kind: types.KindTransposition, Index: 3, Replacement: -1, Candidate: "4531948803436468"},
	}
	var buf bytes.Buffer
	require.NoError(t, PrintCorrections(&buf, cs, PrintOptions{NoColor: true}))
	out := buf.String()
	assert.Contains(t, out, "substitution")
	assert.Contains(t, out, "9100")
	assert.Contains(t, out, "3-4")
	assert.Contains(t, out, "4531948803436468")
	assert.Contains(t, out, "Candidates: 2")
}

func TestPrintBatch_Summary(t *testing.T) {
	rs := []types.BatchResult{
		{Input: "79927398713", Valid: true, Checksum: 70},
		{Input: "79927398710", Checksum: 67},
		{Input: "12a3", Error: "non-digit character 'a' at offset 2"},
	}
	var buf bytes.Buffer
	require.NoError(t, PrintBatch(&buf, rs, PrintOptions{NoColor: true}))
	out := buf.String()
	assert.Contains(t, out, "79927398713")
	assert.Contains(t, out, "non-digit character")
	assert.Contains(t, out, "Numbers: 3 (valid: 1, invalid: 1, errors: 1)")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	PrintHistory(&buf, nil)
	assert.Equal(t, "No log entries.\n", buf.String())

	buf.Reset()
	PrintHistory(&buf, []audit.Record{
		{Seq: 2, Operation: audit.OpValidate, Input: "0", Outcome: "valid"},
		{Seq: 1, Operation: audit.OpGenerate, Input: "1", Outcome: "8", Detail: "18"},
	})
	assert.Equal(t, "#2 validate 0: valid\n#1 generate 1: 8 (18)\n", buf.String())
}

func TestWriteJSON_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, types.BatchResult{Input: "0", Valid: true}, false))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "0", got["input"])
	assert.Equal(t, true, got["valid"])
	assert.NotContains(t, got, "error")
}

func TestWriteJSON_Highlighted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"checksum": 70}, true))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "checksum")
}

func TestBanner(t *testing.T) {
	assert.Equal(t, bannerText, Banner(true))
	assert.Contains(t, Banner(false), "|_|")
}
