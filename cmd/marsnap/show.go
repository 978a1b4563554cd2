package main

import (
	"fmt"

	"github.com/fwojciec/marsnap"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snap, err := findSnapshot(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", marsnap.ErrorMessage(err))
		return err
	}
	return printSnapshot(deps, snap, c.Format)
}

// findSnapshot resolves an ID, or the newest snapshot for "latest".
func findSnapshot(deps *Dependencies, id string) (*marsnap.Snapshot, error) {
	if id != "latest" {
		return deps.Snapshots.FindSnapshotByID(deps.Ctx, id)
	}
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, marsnap.SnapshotFilter{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, marsnap.Errorf(marsnap.ENOTFOUND, "no snapshots saved yet")
	}
	return snaps[0], nil
}
