package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into inspection, output, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors returned by ParseFlags. The caller decides how each one
// maps to output and exit status.
var (
	ErrHelp        = errors.New("help requested")
	ErrVersion     = errors.New("version requested")
	ErrNoArgs      = errors.New("no dataset given")
	ErrTooManyArgs = errors.New("too many arguments")
)

// ParseFlags parses args (os.Args[1:]) into cfg. A config file named by
// --config or $SUBBRIK_CONFIG is loaded first so that flags override it.
func ParseFlags(cfg *Config, args []string) error {
	path, err := configPath(cfg, args)
	if err != nil {
		return err
	}
	if path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return err
		}
		cfg.ConfigFile = path
	}

	fs, negated := newFlagSet(cfg)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, negated)

	if negated.showHelp {
		return ErrHelp
	}
	if negated.showVersion {
		return ErrVersion
	}
	return parsePositionalArgs(fs, cfg)
}

// configPath runs a throwaway parse to find --config before the real one,
// falling back to $SUBBRIK_CONFIG.
func configPath(cfg *Config, args []string) (string, error) {
	scratch := *cfg
	fs, _ := newFlagSet(&scratch)
	fs.SetOutput(io.Discard)
	// Errors are reported by the real parse.
	_ = fs.Parse(args)
	if scratch.ConfigFile != "" {
		return scratch.ConfigFile, nil
	}
	if p := strings.TrimSpace(os.Getenv(ConfigEnv)); p != "" {
		return p, nil
	}
	return "", nil
}

func newFlagSet(cfg *Config) (*flag.FlagSet, *negatedFlags) {
	fs := flag.NewFlagSet("subbrik", flag.ContinueOnError)
	n := &negatedFlags{}
	defineInspectFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, n)
	defineUtilityFlags(fs, cfg, n)
	return fs, n
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineInspectFlags registers --command, --verb-flag, --timeout, --report, --strict.
func defineInspectFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.InspectCommand, "command", cfg.InspectCommand, "Inspection command")
	fs.StringVar(&cfg.InspectVerbFlag, "verb-flag", cfg.InspectVerbFlag, "Verbose flag passed to the inspection command")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Kill the inspection command after this long (0 = never)")
	fs.StringVar(&cfg.ReportFile, "report", cfg.ReportFile, "Parse a captured report instead of running the command (- for stdin)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail when the inspection command cannot be started")
}

// defineOutputFlags registers -f/--format.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&formatValue{&cfg.Format}, "format", "Output format: plain | json | yaml")
	fs.Var(&formatValue{&cfg.Format}, "f", "Same as --format")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --config, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "gcfg config file")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies color overrides into cfg. --no-color wins over --color.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets File and SubBrick from one or two positional args.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch {
	case cfg.CheckOnly:
		return nil
	case len(args) == 0:
		return ErrNoArgs
	case len(args) > 2:
		return fmt.Errorf("%w: got %d, want FILEN [SUBBRIKNAME]", ErrTooManyArgs, len(args))
	}
	cfg.File = args[0]
	cfg.SubBrick = ""
	if len(args) == 2 {
		cfg.SubBrick = args[1]
	}
	return nil
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "subbrik v" + version + " - AFNI sub-brick name/index lookup"},
		{"", ""},
		{"  subbrik [OPTIONS] FILEN [SUBBRIKNAME]", ""},
		{"", ""},
		{"", "With 1 argument (FILEN), lists all the sub-bricks in that dataset,"},
		{"", "one name per line in index order."},
		{"", ""},
		{"", "With 2 arguments (FILEN, SUBBRIKNAME), prints the zero-indexed"},
		{"", "sub-brick number for that name, or nothing if there is none."},
		{"", ""},
		{"", "e.g."},
		{"", ""},
		{"", "  $ subbrik my_bucket+orig"},
		{"", "  Full_Fstat"},
		{"", "  cat2_conv_c1#0_Coef"},
		{"", "  ..."},
		{"", ""},
		{"", "  $ subbrik my_bucket+orig 'cat2_conv_c1#0_Coef'"},
		{"", "  1"},
		{"", ""},
		{"", "Names are read from 3dinfo -verb lines such as"},
		{"", "  -- At sub-brick #11 'statmap_GLT_Fstat' datum type is short: ..."},
		{"", "and must not contain whitespace."},
		{"", ""},
		{"Inspection", ""},
		{"  --command <name>", "Inspection command (default: 3dinfo)"},
		{"  --verb-flag <flag>", "Verbose flag for the command (default: -verb)"},
		{"  --timeout <dur>", "Kill the command after dur (default: never)"},
		{"  --report <path>", "Parse a captured report instead (- for stdin)"},
		{"  --strict", "Fail when the command cannot be started"},
		{"", ""},
		{"Output", ""},
		{"  -f, --format <fmt>", "plain | json | yaml (default: plain)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "gcfg config file (or $" + ConfigEnv + ")"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnose the inspection command"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types (Format, ColorMode) with flag.Var.

type formatValue struct{ p *Format }

func (f *formatValue) String() string {
	if f.p == nil {
		return ""
	}
	return string(*f.p)
}

func (f *formatValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "text":
		*f.p = FormatPlain
	case "json":
		*f.p = FormatJSON
	case "yaml", "yml":
		*f.p = FormatYAML
	default:
		return fmt.Errorf("invalid format %q (use 'plain', 'json' or 'yaml')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
