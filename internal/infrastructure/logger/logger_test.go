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
		name    string
		cfg     *Config
		wantErr bool
		level   zapcore.Level
	}{
		{name: "nil config uses defaults", cfg: nil, level: zapcore.InfoLevel},
		{name: "debug json", cfg: &Config{Level: "debug", Format: "json", Output: "stdout"}, level: zapcore.DebugLevel},
		{name: "upper case level", cfg: &Config{Level: "WARN", Format: "console", Output: "stderr"}, level: zapcore.WarnLevel},
		{name: "unknown level", cfg: &Config{Level: "verbose"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.level))
			assert.False(t, log.Core().Enabled(tt.level-1))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "billing.log")

	log, err := New(&Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	log.Info("payment posted")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"payment posted"`)
	assert.Contains(t, string(data), `"level":"info"`)
}

func TestNew_StaticFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "billing.log")

	log, err := New(&Config{
		Level:  "info",
		Format: "json",
		Output: path,
		Fields: map[string]string{"service": "megatower-billing", "env": "test"},
	})
	require.NoError(t, err)

	log.Info("bill generated")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"env":"test","service":"megatower-billing"`)
}

func TestNew_UnwritableFile(t *testing.T) {
	_, err := New(&Config{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}
