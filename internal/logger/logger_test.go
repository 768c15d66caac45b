package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name              string
		logLevel          string
		expectedSlogLevel slog.Level
	}{
		{"DebugLevel", "debug", slog.LevelDebug},
		{"InfoLevel", "info", slog.LevelInfo},
		{"WarnLevel", "WARN", slog.LevelWarn},
		{"ErrorLevel", "error", slog.LevelError},
		{"DefaultToInfo", "unknown", slog.LevelInfo},
		{"EmptyToInfo", "", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				Logging: config.LoggingConfig{
					Level: tc.logLevel,
				},
			}

			logger := NewLogger(cfg)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tc.expectedSlogLevel))
			if tc.expectedSlogLevel > slog.LevelDebug {
				assert.False(t, logger.Enabled(ctx, tc.expectedSlogLevel-1))
			}
		})
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkout.log")
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "info", File: path}}

	logger := NewLogger(cfg)
	logger.Error("lookup failed", "item_id", "FAIL_DB")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"lookup failed"`)
	assert.Contains(t, string(data), `"item_id":"FAIL_DB"`)
}

func TestNewLogger_UnwritableFileFallsBack(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")}}
	assert.NotNil(t, NewLogger(cfg))
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)
	logger.With("correlation_id", "abc").Info("sale started", "sale_id", "42")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "sale started", record["msg"])
	assert.Equal(t, "abc", record["correlation_id"])
	assert.Equal(t, "42", record["sale_id"])
	assert.NotContains(t, record, "source")
}
