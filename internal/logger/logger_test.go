package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"Warning", zapcore.WarnLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{" error ", zapcore.ErrorLevel, false},
		{"fatal", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
	}
	for _, tc := range tests {
		lvl, err := ParseLevel(tc.input)
		if tc.wantErr {
			assert.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, lvl, tc.input)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("dev", "loud", "")
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cleanse.log")

	log, err := New("prod", "info", file)
	require.NoError(t, err)

	log.Debug("скрыто")
	log.Info("Скопированный текст очищен", zap.Int("urls", 2))
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Скопированный текст очищен")
	assert.Contains(t, string(data), `"urls":2`)
	assert.NotContains(t, string(data), "скрыто")
}

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log.Logger)
	log.Info("ничего")
}
