package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestNew_ParsesLevel(t *testing.T) {
	log, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	require.Error(t, err)
}

func TestNew_WritesFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizchat.log")
	log, err := New(Config{Level: "info", File: path})
	require.NoError(t, err)

	log.Info("session ended", zap.String("subject", "finance"))
	_ = log.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `"subject":"finance"`), "log file: %s", b)
}
