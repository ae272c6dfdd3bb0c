package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests swap the global slog default, so none of them run in parallel.

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "toolkit-test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	buf.Reset()

	return record
}

func TestGetCarriesDefaultSubsystem(t *testing.T) { //nolint:paralleltest
	buf := captureJSON(t)

	Get().Info("hello")

	record := decodeLine(t, buf)
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "toolkit-test", record["subsystem"])
}

func TestGetHonorsContext(t *testing.T) { //nolint:paralleltest
	buf := captureJSON(t)

	ctx := WithSubsystem(t.Context(), "collection")
	ctx = With(ctx, "container", "sorted")

	Get(ctx).Debug("flushed")

	record := decodeLine(t, buf)
	assert.Equal(t, "collection", record["subsystem"])
	assert.Equal(t, "sorted", record["container"])
}

func TestWithDoesNotShareValues(t *testing.T) { //nolint:paralleltest
	buf := captureJSON(t)

	base := With(t.Context(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	Get(left).Info("left")

	record := decodeLine(t, buf)
	assert.InDelta(t, 2.0, record["b"], 0)
	assert.NotContains(t, record, "c")

	Get(right).Info("right")

	record = decodeLine(t, buf)
	assert.InDelta(t, 3.0, record["c"], 0)
	assert.NotContains(t, record, "b")
}

func TestMutedLogger(t *testing.T) { //nolint:paralleltest
	buf := captureJSON(t)

	Get(WithMuted(t.Context(), true)).Error("never printed")
	Discard().Error("never printed either")

	assert.Zero(t, buf.Len())
}

func TestParseOutput(t *testing.T) { //nolint:paralleltest
	_, err := parseOutput("stderr")
	require.NoError(t, err)

	_, err = parseOutput("syslog")
	require.ErrorIs(t, err, ErrInvalidLogOutput)
}

func TestConfigureLoggingFromEnv(t *testing.T) { //nolint:paralleltest
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer

	ConfigureLogging("env-test", WithOutput(&buf))

	Get().Info("filtered out")
	assert.Zero(t, buf.Len())

	Get().Warn("kept")

	record := decodeLine(t, &buf)
	assert.Equal(t, "env-test", record["subsystem"])
}
