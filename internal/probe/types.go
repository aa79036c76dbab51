package probe

import (
	"errors"
	"os/exec"
	"strings"
)

// Report is the captured output of one inspection run, or of a report file.
type Report struct {
	Source  string   // Dataset reference or report path.
	Args    []string // Command line that produced it; nil for report files.
	Stdout  []byte
	Stderr  []byte
	ExitErr error // Non-nil when the command exited non-zero.
}

// Text returns stdout followed by stderr.
func (r *Report) Text() string {
	var b strings.Builder
	b.Grow(len(r.Stdout) + len(r.Stderr) + 1)
	b.Write(r.Stdout)
	if len(r.Stdout) > 0 && len(r.Stderr) > 0 && r.Stdout[len(r.Stdout)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.Write(r.Stderr)
	return b.String()
}

// ExitCode returns the command's exit status: 0 on success, -1 when it
// was killed by a signal or did not come from a command.
func (r *Report) ExitCode() int {
	if r.ExitErr == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(r.ExitErr, &ee) {
		return ee.ExitCode()
	}
	return -1
}

// FirstLine returns the first non-blank line of stderr, for log messages.
func (r *Report) FirstLine() string {
	for _, line := range strings.Split(string(r.Stderr), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}
