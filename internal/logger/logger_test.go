package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info"}, &buf)
	require.NoError(t, err)

	log.Infow("Added item", "item", "apple", "qty", 10)
	log.Debugw("hidden")
	require.NoError(t, log.Close())

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Added item")
	assert.Contains(t, out, `"item": "apple"`)
	assert.NotContains(t, out, "hidden")

	// ISO8601 timestamp leads the line.
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`, out)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	log.WithSession("abc").Warnw("Item not in stock", "item", "orange")
	log.Infow("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Item not in stock", entry["msg"])
	assert.Equal(t, "orange", entry["item"])
	assert.Equal(t, "abc", entry["session"])
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New(Config{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
