// Command subbrik lists the sub-bricks of an AFNI dataset, or prints the
// zero-based index of a single sub-brick given its name.
//
// It runs 3dinfo -verb on the dataset and reads the names and indices
// from lines such as
//
//	-- At sub-brick #11 'statmap_GLT_Fstat' datum type is short: ...
//
// Results go to stdout; logs and diagnostics go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/subbrik/internal/check"
	"github.com/backmassage/subbrik/internal/config"
	"github.com/backmassage/subbrik/internal/logging"
	"github.com/backmassage/subbrik/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args); err != nil {
		switch {
		case errors.Is(err, config.ErrHelp), errors.Is(err, config.ErrNoArgs):
			// No arguments prints usage and succeeds.
			config.PrintUsage(stdout, version)
			return 0
		case errors.Is(err, config.ErrVersion):
			fmt.Fprintf(stdout, "subbrik v%s (%s)\n", version, commit)
			return 0
		case errors.Is(err, config.ErrTooManyArgs):
			fmt.Fprintf(stderr, "subbrik: %v\n\n", err)
			config.PrintUsage(stderr, version)
			return 2
		}
		fmt.Fprintf(stderr, "subbrik: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "subbrik: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(stderr, "subbrik: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if cfg.ReportFile == "" {
		if path, err := check.CheckDeps(&cfg); err == nil {
			log.Debug("inspection command: %s", path)
		}
	}

	// Phase 3: Signal handling. Cancelling the context kills the
	// inspection command if it is still running.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.Run(ctx, &cfg, log, stdin, stdout)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Debug("%s: %d sub-bricks", cfg.File, res.SubBricks)
	return 0
}
