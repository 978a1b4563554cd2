package scrape

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/marsnap"
)

// Fingerprint hashes the extracted content of a snapshot with xxhash.
// ID, Fingerprint and CapturedAt are ignored, so two runs over unchanged
// pages share a fingerprint.
func Fingerprint(snap *marsnap.Snapshot) string {
	d := xxhash.New()
	field := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x1f")
	}
	optional := func(s *string) {
		if s == nil {
			field("\x00")
			return
		}
		field(*s)
	}

	optional(snap.Headline)
	optional(snap.Summary)
	optional(snap.FeaturedImageURL)

	if snap.Facts == nil {
		field("\x00")
	} else {
		field(fmt.Sprint(len(snap.Facts.Rows)))
		for _, r := range snap.Facts.Rows {
			for _, c := range r.Cells() {
				field(c)
			}
		}
	}

	field(fmt.Sprint(len(snap.Gallery)))
	for _, item := range snap.Gallery {
		field(item.ImageURL)
		field(item.Title)
	}

	return fmt.Sprintf("%x", d.Sum64())
}
