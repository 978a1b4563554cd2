package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/marsnap"
	"github.com/fwojciec/marsnap/fs"
	"github.com/mattn/go-runewidth"
)

// printSnapshot writes snap to stdout in the requested format.
func printSnapshot(deps *Dependencies, snap *marsnap.Snapshot, format string) error {
	switch format {
	case "markdown":
		var factsMD string
		if snap.Facts != nil && deps.Converter != nil {
			md, err := deps.Converter.Convert(snap.Facts.HTML())
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", marsnap.ErrorMessage(err))
				return err
			}
			factsMD = md
		}
		out, err := fs.FormatSnapshot(snap, factsMD)
		if err != nil {
			return err
		}
		fmt.Fprint(deps.Stdout, out)
		return nil
	case "table":
		writeSnapshotTable(deps.Stdout, snap)
		return nil
	default:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
}

// writeSnapshotTable renders a snapshot for a terminal: a field summary,
// the facts table and the gallery, each as aligned columns.
func writeSnapshotTable(w io.Writer, snap *marsnap.Snapshot) {
	summary := [][]string{
		{"ID", valueOr(&snap.ID, "-")},
		{"Captured", snap.CapturedAt.UTC().Format(time.RFC3339)},
		{"Headline", valueOr(snap.Headline, "-")},
		{"Summary", valueOr(snap.Summary, "-")},
		{"Featured image", valueOr(snap.FeaturedImageURL, "-")},
	}
	writeColumns(w, summary)

	fmt.Fprintln(w)
	if snap.Facts == nil {
		fmt.Fprintln(w, "Facts: unavailable")
	} else {
		rows := [][]string{marsnap.FactsColumns}
		for _, r := range snap.Facts.Rows {
			rows = append(rows, r.Cells())
		}
		writeColumns(w, rows)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Hemispheres (%d)\n", len(snap.Gallery))
	rows := make([][]string, 0, len(snap.Gallery))
	for _, item := range snap.Gallery {
		rows = append(rows, []string{"  " + item.Title, item.ImageURL})
	}
	writeColumns(w, rows)
}

// writeColumns writes rows with every column padded to its widest cell,
// measured in terminal display width.
func writeColumns(w io.Writer, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		fmt.Fprintln(w, b.String())
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
