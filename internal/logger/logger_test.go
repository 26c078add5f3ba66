package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"scrumboard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrumboard.log")

	log, err := logger.New(logger.Config{Level: "debug", Filename: path})
	require.NoError(t, err)

	log.Infow("sprint started", "sprint_id", "abc")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"sprint started"`)
	assert.Contains(t, string(data), `"sprint_id":"abc"`)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	assert.Error(t, err)
}
