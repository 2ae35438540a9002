package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestShouldEnableColor(t *testing.T) {
	// t.Setenv restores the original value once the test ends
	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.Unsetenv("NO_COLOR"))

	t.Setenv("LOG_COLOR", "true")
	assert.True(t, shouldEnableColor())

	t.Setenv("LOG_COLOR", "0")
	assert.False(t, shouldEnableColor())

	t.Setenv("NO_COLOR", "1")
	t.Setenv("LOG_COLOR", "true")
	assert.False(t, shouldEnableColor())
}

func TestDefaultConfig_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg := DefaultConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestNew_RespectsLevel(t *testing.T) {
	l, err := New(Config{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_BadOutputPath(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "console", OutputPaths: []string{"/nonexistent/dir/log.txt"}})
	assert.Error(t, err)
}
