package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zapcore.Level
	}{
		{name: "empty config", cfg: Config{}, wantLevel: zapcore.InfoLevel},
		{name: "debug console", cfg: Config{Level: "DEBUG", Encoding: "console"}, wantLevel: zapcore.DebugLevel},
		{name: "invalid level", cfg: Config{Level: "loud"}, wantLevel: zapcore.InfoLevel},
		{name: "unknown encoding", cfg: Config{Level: "warn", Encoding: "xml"}, wantLevel: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.log")

	l, err := New(Config{Level: "info", OutputPath: path})
	require.NoError(t, err)

	l.Info("search finished")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"search finished"`)
	assert.Contains(t, string(data), `"level":"INFO"`)
}
