// Package check provides system diagnostics (--check mode) and the
// dependency lookup (CheckDeps) for the inspection command.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/subbrik/internal/config"
)

// Sentinel errors returned by CheckDeps.
var (
	ErrInspectorNotFound = errors.New("inspection command not found on PATH")
	ErrVersionFailed     = errors.New("inspection command did not report a version")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck reports where the inspection command lives, its version, and
// the config in effect. It returns false when the command is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	if cfg.ConfigFile != "" {
		log.Info("Config: %s", cfg.ConfigFile)
	}
	log.Info("Command: %s %s <dataset>", cfg.InspectCommand, cfg.InspectVerbFlag)

	path, err := exec.LookPath(cfg.InspectCommand)
	if err != nil {
		log.Error("%s not found (is AFNI installed and on PATH?)", cfg.InspectCommand)
		return false
	}
	log.Success("Found: %s", path)

	v, err := Version(cfg.InspectCommand)
	if err != nil {
		log.Warn("%v", err)
		return true
	}
	log.Success("Version: %s", v)
	return true
}

// CheckDeps verifies the inspection command is on PATH and returns its
// resolved path.
func CheckDeps(cfg *config.Config) (string, error) {
	path, err := exec.LookPath(cfg.InspectCommand)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInspectorNotFound, cfg.InspectCommand)
	}
	return path, nil
}

// Version runs "<command> -ver" (supported by every AFNI program) and
// returns the first non-blank line of its combined output.
func Version(command string) (string, error) {
	out, err := exec.Command(command, "-ver").CombinedOutput()
	line := firstLine(string(out))
	if err != nil || line == "" {
		return "", fmt.Errorf("%w: %s -ver: %v", ErrVersionFailed, command, err)
	}
	return line, nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
