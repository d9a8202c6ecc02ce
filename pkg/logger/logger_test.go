package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheOutlierDev/UppbeatApi/pkg/logger"
)

func TestNew_ConsoleOnly(t *testing.T) {
	log := logger.New(logger.Config{Mode: "debug"})
	require.NotNil(t, log)
	log.Debug("console sink works")
}

func TestNew_WithFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := logger.New(logger.Config{Mode: "release", FilePath: path})
	require.NotNil(t, log)

	log.Info("file sink works")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file sink works")
}
