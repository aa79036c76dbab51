//go:build unix

package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/subbrik/internal/config"
)

// fakeInspector writes an executable shell script standing in for 3dinfo.
func fakeInspector(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake3dinfo")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestProbe_CapturesBothStreams(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InspectCommand = fakeInspector(t, `
echo "args: $1 $2"
echo "-- At sub-brick #0 'Full_Fstat' datum type is float"
echo "-- At sub-brick #1 'Coef' datum type is float" >&2
`)

	r, err := Probe(context.Background(), &cfg, "my_bucket+orig")
	require.NoError(t, err)
	assert.NoError(t, r.ExitErr)
	assert.Equal(t, "args: -verb my_bucket+orig\n-- At sub-brick #0 'Full_Fstat' datum type is float\n", string(r.Stdout))
	assert.Equal(t, "-- At sub-brick #1 'Coef' datum type is float\n", string(r.Stderr))
	assert.Contains(t, r.Text(), "'Coef'")
	assert.Equal(t, "my_bucket+orig", r.Source)
}

func TestProbe_NonZeroExitIsNotAnError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InspectCommand = fakeInspector(t, `
echo "** FATAL ERROR: can't open dataset '$2'" >&2
exit 3
`)

	r, err := Probe(context.Background(), &cfg, "missing+orig")
	require.NoError(t, err)
	require.Error(t, r.ExitErr)
	assert.Equal(t, 3, r.ExitCode())
	assert.Equal(t, "** FATAL ERROR: can't open dataset 'missing+orig'", r.FirstLine())
}

func TestProbe_Timeout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InspectCommand = fakeInspector(t, "exec sleep 10")
	cfg.Timeout = 50 * time.Millisecond

	start := time.Now()
	_, err := Probe(context.Background(), &cfg, "x+orig")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestProbe_Canceled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InspectCommand = fakeInspector(t, "exec sleep 10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Probe(ctx, &cfg, "x+orig")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
