package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: WarnLevel, Type: TypeText})

	l.Info("dropped")
	l.Warn("kept", "row", 3)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "row=3")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: DebugLevel, Type: TypeJSON})

	l.Debug("repair", "col", 0)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "repair", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.EqualValues(t, 0, record["col"])
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("error")
	assert.True(t, ok)
	assert.Equal(t, ErrorLevel, level)

	level, ok = ParseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, DefaultLevel, level)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, DefaultLogger, OrDefault(nil))
	assert.Equal(t, Discard, OrDefault(Discard))
}
