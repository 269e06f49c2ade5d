package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"foodiecircle/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLogLevel_Unknown(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "info"})
	require.NoError(t, err)

	logger.Info("search served", slog.Int("results", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "search served", line["msg"])
	assert.Equal(t, float64(3), line["results"])
}

func TestNewLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "warn", Pretty: true})
	require.NoError(t, err)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestWithServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	base, err := newLogger(&buf, config.Log{Level: "info"})
	require.NoError(t, err)

	withServiceAttrs(base, "foodiecircle", "staging").Info("started")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "foodiecircle", line["service"])
	assert.Equal(t, "staging", line["env"])
}

func TestWithServiceAttrs_NoneConfigured(t *testing.T) {
	base := slog.New(slog.DiscardHandler)

	assert.Same(t, base, withServiceAttrs(base, "", ""))
}
