package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"namesplit/internal/config"
)

func TestNew_FileSinkCarriesRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "namesplit.log")
	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path}, false, "run-42")
	require.NoError(t, err)

	logger.Info("header reconciled", zap.Int("name_column", 2))
	logger.Debug("name parsed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug is filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "header reconciled", entry["msg"])
	assert.Equal(t, "run-42", entry["run_id"])
	assert.Equal(t, float64(2), entry["name_column"])
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
	}{
		{"default", config.LoggingConfig{}, false, zapcore.InfoLevel},
		{"warn", config.LoggingConfig{Level: "warn"}, false, zapcore.WarnLevel},
		{"verbose wins", config.LoggingConfig{Level: "error"}, true, zapcore.DebugLevel},
		{"console", config.LoggingConfig{Level: "debug", Format: "console"}, false, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose, "")
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, false, "")
	assert.ErrorContains(t, err, "logging level")

	_, err = New(config.LoggingConfig{Format: "xml"}, false, "")
	assert.ErrorContains(t, err, "unknown logging format")
}
