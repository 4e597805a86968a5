package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("bogus"))
}

func TestInitLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osmeac.log")
	require.NoError(t, InitLogger(Config{Level: "debug", Format: "json", Output: path}))

	Debugf("debug %d", 1)
	Infof("saved order %s", "raid")
	Warnf("skipped %d", 2)
	Errorf("failed: %v", "boom")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"saved order raid"`)
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"level":"error"`)

	require.NoError(t, InitLogger(DefaultConfig()))
}

func TestInitLoggerRejectsUnwritablePath(t *testing.T) {
	err := InitLogger(Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}

func TestLevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.log")
	require.NoError(t, InitLogger(Config{Level: "info", Format: "console", Output: path}))
	Debugf("hidden")
	Info("shown")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
	require.NoError(t, InitLogger(DefaultConfig()))
}
