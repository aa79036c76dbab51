package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/subbrik/internal/brik"
	"github.com/backmassage/subbrik/internal/config"
	"github.com/backmassage/subbrik/internal/logging"
	"github.com/backmassage/subbrik/internal/probe"
)

const exampleReport = `-- At sub-brick #0 'Full_Fstat' datum type is float
-- At sub-brick #1 'cat2_conv_c1#0_Coef' datum type is float
`

// run executes Run against report text fed through stdin.
func run(t *testing.T, report string, args ...string) (string, string, Result, error) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ReportFile = "-"
	cfg.File = "my_bucket+orig"
	if len(args) > 0 {
		cfg.SubBrick = args[0]
	}
	var stdout, logs bytes.Buffer
	res, err := Run(context.Background(), &cfg, logging.New(&logs, true), strings.NewReader(report), &stdout)
	return stdout.String(), logs.String(), res, err
}

func TestRun_Listing(t *testing.T) {
	out, _, res, err := run(t, exampleReport)
	require.NoError(t, err)
	assert.Equal(t, "Full_Fstat\ncat2_conv_c1#0_Coef\n", out)
	assert.Equal(t, 2, res.SubBricks)
	assert.False(t, res.Lookup)
}

func TestRun_Lookup(t *testing.T) {
	out, _, res, err := run(t, exampleReport, "cat2_conv_c1#0_Coef")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
	assert.True(t, res.Lookup)
	assert.True(t, res.Found)
}

func TestRun_LookupMissing(t *testing.T) {
	out, logs, res, err := run(t, exampleReport, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, res.Found)
	assert.Contains(t, logs, `no sub-brick named "nonexistent"`)
}

func TestRun_NoMatchingLines(t *testing.T) {
	report := "** FATAL ERROR: can't open dataset 'missing+orig'\n"
	out, _, res, err := run(t, report)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, res.SubBricks)

	out, _, _, err = run(t, report, "Full_Fstat")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_ListingIsIdempotent(t *testing.T) {
	first, _, _, err := run(t, exampleReport)
	require.NoError(t, err)
	second, _, _, err := run(t, exampleReport)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_ListingOrderAndRoundTrip(t *testing.T) {
	report := "-- At sub-brick #2 'c' datum\n-- At sub-brick #0 'a' datum\n-- At sub-brick #1 'b' datum\n"
	out, _, _, err := run(t, report)
	require.NoError(t, err)
	names := strings.Fields(out)
	require.Equal(t, []string{"a", "b", "c"}, names)

	for pos, name := range names {
		got, _, _, err := run(t, report, name)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(pos), strings.TrimSpace(got), name)
	}
}

func TestRun_DuplicateNameFails(t *testing.T) {
	report := "-- At sub-brick #0 'Coef' datum\n-- At sub-brick #1 'Coef' datum\n"
	out, _, _, err := run(t, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, brik.ErrDuplicateName), "got %v", err)
	assert.Empty(t, out, "nothing is printed when the report is inconsistent")
}

func TestRun_ReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte(exampleReport), 0o644))

	cfg := config.DefaultConfig()
	cfg.ReportFile = path
	cfg.File = "my_bucket+orig"
	cfg.Format = config.FormatJSON
	var stdout bytes.Buffer
	_, err := Run(context.Background(), &cfg, logging.New(&bytes.Buffer{}, false), nil, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"name": "Full_Fstat"`)
}

func TestRun_CommandNotFound(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InspectCommand = "definitely-not-a-real-inspector"
	cfg.File = "my_bucket+orig"

	var stdout, logs bytes.Buffer
	log := logging.New(&logs, false)

	res, err := Run(context.Background(), &cfg, log, nil, &stdout)
	require.NoError(t, err, "lenient by default")
	assert.Empty(t, stdout.String())
	assert.Zero(t, res.SubBricks)
	assert.Contains(t, logs.String(), "WARN")

	cfg.Strict = true
	_, err = Run(context.Background(), &cfg, log, nil, &stdout)
	require.Error(t, err)
	assert.True(t, errors.Is(err, probe.ErrCommandNotFound))
}
