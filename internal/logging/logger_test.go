package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/subbrik/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "subbrik.log")
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Info("info %d", 1)
	l.Warn("warn")
	l.Error("boom: %v", "x")
	l.Success("ok")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "boom: x")
	assert.Contains(t, out, "SUCCESS")
	assert.NotContains(t, out, "hidden")
}

func TestLogger_DebugWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	assert.True(t, l.Verbose())
	l.Debug("shown %s", "now")
	assert.Contains(t, buf.String(), "shown now")
}
