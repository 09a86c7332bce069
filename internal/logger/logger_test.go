package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug_WhenVerbose(t *testing.T) {
	defer Init(os.Stderr, false)

	var buf bytes.Buffer
	Init(&buf, true)
	Debug("resolved config", "workers", 4, "log_file", "out.jsonl")

	out := buf.String()
	assert.Contains(t, out, "resolved config")
	assert.Contains(t, out, "workers=4")
	assert.Contains(t, out, "log_file=out.jsonl")
	assert.NotContains(t, out, "<nil>")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer Init(os.Stderr, false)

	var buf bytes.Buffer
	Init(&buf, false)
	Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestWarn_AlwaysShown(t *testing.T) {
	defer Init(os.Stderr, false)

	var buf bytes.Buffer
	Init(&buf, false)
	Warn(errors.New("log file not writable"))

	out := buf.String()
	assert.Contains(t, out, "log file not writable")
	assert.Contains(t, out, "WRN")
}
