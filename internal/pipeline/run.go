package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/backmassage/subbrik/internal/brik"
	"github.com/backmassage/subbrik/internal/config"
	"github.com/backmassage/subbrik/internal/display"
	"github.com/backmassage/subbrik/internal/probe"
)

// Logger is the subset of logging.Logger the pipeline needs.
type Logger interface {
	Warn(string, ...interface{})
	Debug(string, ...interface{})
}

// Run performs one listing or lookup for cfg.File and writes the result to
// stdout. stdin is only read when cfg.ReportFile is "-".
func Run(ctx context.Context, cfg *config.Config, log Logger, stdin io.Reader, stdout io.Writer) (Result, error) {
	res := Result{Lookup: cfg.LookupMode()}

	report, err := probe.Load(ctx, cfg, stdin)
	switch {
	case err == nil:
	case errors.Is(err, probe.ErrCommandNotFound) && !cfg.Strict:
		log.Warn("%v", err)
		report = &probe.Report{Source: cfg.File}
	default:
		return res, err
	}

	if report.Args != nil {
		log.Debug("ran: %q", report.Args)
	}
	if report.ExitErr != nil {
		res.ToolExit = report.ExitCode()
		log.Debug("%s exited with status %d: %s", report.Args[0], res.ToolExit, report.FirstLine())
	}

	x, err := brik.Parse(report.Text())
	if err != nil {
		return res, fmt.Errorf("%s: %w", report.Source, err)
	}
	res.SubBricks = x.Len()
	log.Debug("%d sub-bricks in %s", x.Len(), report.Source)

	if res.Lookup {
		_, res.Found = x.Lookup(cfg.SubBrick)
		if !res.Found {
			log.Debug("no sub-brick named %q", cfg.SubBrick)
		}
		return res, display.WriteLookup(stdout, x, cfg.SubBrick, cfg.Format)
	}
	return res, display.WriteList(stdout, x, cfg.Format)
}
