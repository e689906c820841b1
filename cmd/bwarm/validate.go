package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/JonMunkholm/bwarm/internal/core"
)

// validateAction validates one snapshot and prints where the logs went.
// Data errors do not change the exit status; only a failed run does.
func validateAction(c *cli.Context) error {
	cfg, err := setup()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if err := requireBaseDir(c, cfg); err != nil {
		return err
	}
	if mainOpts.snapshot == "" {
		cli.ShowAppHelp(c)
		return cli.NewExitError("missing snapshot (-s)", usageExitCode)
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runner.Run(ctx, mainOpts.snapshot)
	if err != nil {
		return cli.NewExitError(core.FormatUserError(err)+"\n"+err.Error(), 1)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%s: %d errors, %d distinct messages\n", report.Snapshot, report.TotalErrors(), len(report.Summary))
	for _, e := range report.Entities {
		switch {
		case e.ReadError != "":
			fmt.Fprintf(w, "  %s: could not be read\n", e.File)
		case e.Abandoned != "":
			fmt.Fprintf(w, "  %s: stopped by internal error\n", e.File)
		}
	}
	fmt.Fprintf(w, "detail log:  %s\n", report.DetailPath)
	fmt.Fprintf(w, "summary log: %s\n", report.SummaryPath)
	return nil
}
