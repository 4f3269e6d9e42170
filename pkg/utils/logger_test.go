package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogLevelNormal, ""))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	require.NoError(t, InitLogger(LogLevelVerbose, ""))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	require.NoError(t, InitLogger(LogLevelQuiet, ""))
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())

	// 未知级别回退到INFO
	require.NoError(t, InitLogger("UNKNOWN", ""))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInitLoggerWithFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "logger_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	logFile := filepath.Join(tempDir, "logs", "app.log")
	require.NoError(t, InitLogger(LogLevelNormal, logFile))

	Info("测试日志 %d", 1)

	// 日志目录和文件应该被创建
	assert.True(t, CheckFileExists(logFile))
}

func TestFormatTimeDuration(t *testing.T) {
	assert.Equal(t, "5s", FormatTimeDuration(5))
	assert.Equal(t, "1m 5s", FormatTimeDuration(65))
	assert.Equal(t, "1h 1m 5s", FormatTimeDuration(3665))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512.00 B", FormatFileSize(512))
	assert.Equal(t, "1.00 KB", FormatFileSize(1024))
	assert.Equal(t, "1.50 MB", FormatFileSize(1572864))
}
