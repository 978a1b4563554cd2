package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/marsnap"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, marsnap.SnapshotFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", marsnap.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'marsnap scrape --save' to capture one.")
		return nil
	}

	rows := make([][]string, 0, len(snaps)+1)
	rows = append(rows, []string{"ID", "CAPTURED", "HEADLINE"})
	for _, s := range snaps {
		rows = append(rows, []string{
			s.ID,
			s.CapturedAt.UTC().Format(time.RFC3339),
			valueOr(s.Headline, "-"),
		})
	}
	writeColumns(deps.Stdout, rows)

	return nil
}
