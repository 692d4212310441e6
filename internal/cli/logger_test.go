package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, known := parseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("本番はJSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "warn", "production")
		logger.Info("hidden")
		logger.Warn("shown", slog.Int("n", 1))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Contains(t, entry, "source")
	})

	t.Run("devはtint", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "debug", "dev")
		logger.Debug("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})

	t.Run("不明なレベルは警告を出してInfo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "loud", "")
		assert.Contains(t, buf.String(), "Unknown log level")
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})
}
