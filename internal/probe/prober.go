package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"time"

	"github.com/backmassage/subbrik/internal/config"
)

// Sentinel errors returned by Probe.
var (
	ErrCommandNotFound = errors.New("inspection command not found")
	ErrTimeout         = errors.New("inspection command timed out")
)

// waitDelay bounds how long Wait blocks on output pipes after the command
// is killed, in case it left children holding them open.
const waitDelay = 2 * time.Second

// Probe runs "<InspectCommand> <InspectVerbFlag> ref" and returns its
// captured output. The reference is passed as a single argument; no shell
// is involved.
func Probe(ctx context.Context, cfg *config.Config, ref string) (*Report, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	args := Args(cfg, ref)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	r := &Report{
		Source: ref,
		Args:   args,
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return r, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return r, fmt.Errorf("%w after %s: %s", ErrTimeout, cfg.Timeout, args[0])
		}
		return r, fmt.Errorf("%s %q: %w", args[0], ref, ctxErr)
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		r.ExitErr = err
		return r, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrCommandNotFound, args[0], err)
	}
	return nil, fmt.Errorf("%s %q: %w", args[0], ref, err)
}

// Args returns the inspection command line for ref. An empty verb flag is
// omitted.
func Args(cfg *config.Config, ref string) []string {
	args := []string{cfg.InspectCommand}
	if cfg.InspectVerbFlag != "" {
		args = append(args, cfg.InspectVerbFlag)
	}
	return append(args, ref)
}

// ReadReport reads a captured report from path, or from stdin when path
// is "-".
func ReadReport(path string, stdin io.Reader) (*Report, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	return &Report{Source: path, Stdout: data}, nil
}

// Load returns the report selected by cfg: the captured file when
// ReportFile is set, otherwise a fresh Probe of cfg.File.
func Load(ctx context.Context, cfg *config.Config, stdin io.Reader) (*Report, error) {
	if cfg.ReportFile != "" {
		return ReadReport(cfg.ReportFile, stdin)
	}
	return Probe(ctx, cfg, cfg.File)
}
