package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli"
)

var snapshotsCommand = cli.Command{
	Name:  "snapshots",
	Usage: "List the snapshots in the snapshot directory",
	Description: `Lists every snapshot directory with the number of entity files it
	holds and whether an earlier run finished and left a summary log.

	  bwarm -d /data/bwarm snapshots`,
	Action: snapshotsAction,
}

func snapshotsAction(c *cli.Context) error {
	cfg, err := setup()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if err := requireBaseDir(c, cfg); err != nil {
		return err
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	infos, err := runner.Snapshots()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SNAPSHOT\tFILES\tVALIDATED")
	for _, s := range infos {
		validated := "no"
		if s.HasSummary {
			validated = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", s.ID, s.Files, validated)
	}
	return tw.Flush()
}
