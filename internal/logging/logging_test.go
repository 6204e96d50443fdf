package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONCarriesRunFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, FormatJSON, slog.LevelInfo)
	l.Info("hello", "threads", 4)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "sawshark", m["program"])
	assert.Equal(t, l.RunID(), m["run_id"])
	_, err := uuid.Parse(l.RunID())
	assert.NoError(t, err)
	assert.Equal(t, float64(4), m["threads"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, FormatText, slog.LevelWarn)
	l.Info("dropped")
	assert.Zero(t, buf.Len())
	l.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
	assert.Contains(t, buf.String(), "program=sawshark")
}

func TestLogSummary(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, FormatText, slog.LevelInfo).LogSummary(10, 10, 2, map[string]int{"ALU": 2}, 1500*time.Millisecond)
	out := buf.String()
	assert.Contains(t, out, "records=10")
	assert.Contains(t, out, "written=10")
	assert.Contains(t, out, "label.ALU=2")
	assert.Contains(t, out, "elapsed=1.5s")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "xml"))
	Noop().Info("nothing")
}
