package logger

import (
	"os"
	"path/filepath"
	"testing"

	"homework_notification_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLog(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Log.SetOutput(os.Stdout)
		Log.SetLevel(logrus.InfoLevel)
		Log.SetFormatter(&logrus.TextFormatter{})
	})
}

func TestInit_WritesToLogFile(t *testing.T) {
	resetLog(t)
	path := filepath.Join(t.TempDir(), "main.log")

	require.NoError(t, Init(&config.AppConfig{LogLevel: "info", Environment: "production", LogFile: path}))
	Component("poller").Info("Homework status not changed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Homework status not changed"`)
	assert.Contains(t, string(data), `"component":"poller"`)
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	resetLog(t)

	require.NoError(t, Init(&config.AppConfig{LogLevel: "chatty"}))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	_, isText := Log.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestInit_UnwritableLogFile(t *testing.T) {
	resetLog(t)

	err := Init(&config.AppConfig{LogLevel: "info", LogFile: filepath.Join(t.TempDir(), "missing", "main.log")})
	assert.Error(t, err)
}
