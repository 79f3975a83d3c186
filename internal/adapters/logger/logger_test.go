package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecswatch/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_PrettyLevels(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("polling cluster")
	assert.Contains(t, buf.String(), "polling cluster")

	buf.Reset()
	l.Warn("poll failed, retrying next cycle")
	assert.Contains(t, buf.String(), "poll failed, retrying next cycle")
}

func TestLogger_ErrorRendersCauseChain(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(zerr.Wrap(errors.New("connection refused"), "failed to list tasks"))

	out := buf.String()
	assert.Contains(t, out, "Error: failed to list tasks")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ connection refused")
}

func TestLogger_ErrorNilIsNoop(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
	assert.Equal(t, "ERROR", record["level"])
}

func TestLogger_JSONModeInfo(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Info("polling cluster")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "polling cluster", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}
