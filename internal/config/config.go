// Package config holds runtime configuration: defaults, CLI flag parsing,
// an optional gcfg config file, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// Format selects how results are written to stdout.
type Format string

const (
	FormatPlain Format = "plain" // One value per line (default).
	FormatJSON  Format = "json"  // JSON array / object of {index, name}.
	FormatYAML  Format = "yaml"  // YAML sequence / mapping of {index, name}.
)

// ColorMode controls ANSI color in log output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by an optional config file, then by [ParseFlags], before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Positional arguments.
	File     string // FILEN: dataset reference passed to the inspection command.
	SubBrick string // SUBBRIKNAME: empty means listing mode.

	// Inspection command.
	InspectCommand  string        // Default: "3dinfo".
	InspectVerbFlag string        // Default: "-verb".
	Timeout         time.Duration // Default: 0 (wait for the command to finish).
	ReportFile      string        // Parse this captured report instead of running the command ("-" = stdin).
	Strict          bool          // Fail when the inspection command cannot be started.

	// Output.
	Format Format // Default: "plain".

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional gcfg file; also read from $SUBBRIK_CONFIG.
	CheckOnly  bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with built-in defaults. Used as the base
// before the config file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		InspectCommand:  "3dinfo",
		InspectVerbFlag: "-verb",
		Format:          FormatPlain,
		ColorMode:       ColorAuto,
	}
}

// LookupMode reports whether a single sub-brick name should be resolved.
// An empty name selects listing mode.
func (c *Config) LookupMode() bool {
	return c.SubBrick != ""
}

// Validate checks enum fields and required values. Outside CheckOnly mode
// a dataset reference is required.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatPlain, FormatJSON, FormatYAML:
		// valid
	default:
		return errors.New("invalid format (use 'plain', 'json' or 'yaml')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}

	if c.ReportFile == "" && strings.TrimSpace(c.InspectCommand) == "" {
		return errors.New("inspection command must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.File == "" {
		return errors.New("need a dataset reference (FILEN)")
	}
	return nil
}
