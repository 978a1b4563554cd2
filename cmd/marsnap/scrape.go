package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/marsnap"
	"github.com/fwojciec/marsnap/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	snap, err := deps.Scraper.Run(ctx)
	if err != nil {
		deps.Logger.Error("scrape failed", "err", err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		if marsnap.ErrorCode(err) == marsnap.EUNAVAILABLE {
			fmt.Fprintln(deps.Stderr, "Hint: check network access and that Chrome or Chromium is installed (see --browser-bin)")
		}
		return err
	}

	if c.Save {
		if err := deps.Snapshots.CreateSnapshot(ctx, snap); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", marsnap.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved snapshot %s\n", snap.ID)
	}

	if deps.Writer != nil {
		if err := deps.Writer.WriteSnapshot(ctx, snap); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", marsnap.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", filepath.Join(c.Out, fs.DirName(snap)))
	}

	if c.FactsHTML {
		if snap.Facts == nil {
			fmt.Fprintln(deps.Stderr, "error: facts table unavailable")
			return marsnap.Errorf(marsnap.ENOTFOUND, "facts table unavailable")
		}
		fmt.Fprintln(deps.Stdout, snap.Facts.HTML())
		return nil
	}

	return printSnapshot(deps, snap, c.Format)
}

// describe returns the application message of err, or the full error text
// when err carries no application error.
func describe(err error) string {
	if marsnap.ErrorCode(err) == marsnap.EINTERNAL {
		return err.Error()
	}
	return marsnap.ErrorMessage(err)
}
