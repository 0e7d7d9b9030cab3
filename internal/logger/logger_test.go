package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/balancer/internal/config"
)

func TestNew_Disabled(t *testing.T) {
	l, err := New(&config.Config{LogFile: config.DisableLogging, LogLevel: "info"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "balancer.log")
	l, err := New(&config.Config{Env: "production", LogFile: path, LogLevel: "info"})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("assessment started")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"assessment started"`)
	assert.False(t, strings.Contains(out, "hidden"), "debug must be filtered at info level")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&config.Config{LogFile: filepath.Join(t.TempDir(), "x.log"), LogLevel: "loud"})
	assert.Error(t, err)
}
