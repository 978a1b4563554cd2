package main

import (
	"fmt"

	"github.com/fwojciec/marsnap"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return marsnap.Errorf(marsnap.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.ID); err != nil {
		if marsnap.ErrorCode(err) == marsnap.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'marsnap list' to see saved snapshots.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", marsnap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot %s\n", c.ID)
	return nil
}
