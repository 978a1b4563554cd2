// Package fs exports snapshots as files on disk.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/marsnap"
	"gopkg.in/yaml.v3"
)

// Files written for every snapshot. FactsFile is omitted when the snapshot
// has no facts table.
const (
	JSONFile     = "snapshot.json"
	MarkdownFile = "snapshot.md"
	FactsFile    = "facts.html"
)

// DirName returns the export directory name for a snapshot: its ID when it
// has been stored, otherwise its capture time.
func DirName(snap *marsnap.Snapshot) string {
	if snap.ID != "" {
		return snap.ID
	}
	return snap.CapturedAt.UTC().Format("20060102T150405Z")
}

type frontmatter struct {
	ID          string `yaml:"id,omitempty"`
	Captured    string `yaml:"captured"`
	Fingerprint string `yaml:"fingerprint,omitempty"`
	Headline    string `yaml:"headline,omitempty"`
	Image       string `yaml:"featured_image,omitempty"`
	Hemispheres int    `yaml:"hemispheres"`
}

// FormatSnapshot formats a snapshot as Markdown with YAML frontmatter.
// factsMD is the facts table already rendered as Markdown, possibly empty.
func FormatSnapshot(snap *marsnap.Snapshot, factsMD string) (string, error) {
	fm := frontmatter{
		ID:          snap.ID,
		Captured:    snap.CapturedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Fingerprint: snap.Fingerprint,
		Hemispheres: len(snap.Gallery),
	}
	if snap.Headline != nil {
		fm.Headline = *snap.Headline
	}
	if snap.FeaturedImageURL != nil {
		fm.Image = *snap.FeaturedImageURL
	}
	head, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n\n")

	b.WriteString("# Mars News\n\n")
	if snap.Headline != nil {
		b.WriteString("## ")
		b.WriteString(*snap.Headline)
		b.WriteString("\n\n")
	}
	if snap.Summary != nil {
		b.WriteString(*snap.Summary)
		b.WriteString("\n\n")
	}
	if snap.Headline == nil && snap.Summary == nil {
		b.WriteString("_unavailable_\n\n")
	}

	b.WriteString("# Featured Image\n\n")
	if snap.FeaturedImageURL != nil {
		b.WriteString("![Featured image](")
		b.WriteString(*snap.FeaturedImageURL)
		b.WriteString(")\n\n")
	} else {
		b.WriteString("_unavailable_\n\n")
	}

	b.WriteString("# Mars Facts\n\n")
	if factsMD != "" {
		b.WriteString(factsMD)
		b.WriteString("\n\n")
	} else {
		b.WriteString("_unavailable_\n\n")
	}

	b.WriteString("# Mars Hemispheres\n\n")
	if len(snap.Gallery) == 0 {
		b.WriteString("_none_\n")
	}
	for _, item := range snap.Gallery {
		b.WriteString("- [")
		b.WriteString(item.Title)
		b.WriteString("](")
		b.WriteString(item.ImageURL)
		b.WriteString(")\n")
	}
	return b.String(), nil
}

// Ensure Writer implements marsnap.SnapshotWriter at compile time.
var _ marsnap.SnapshotWriter = (*Writer)(nil)

// Writer writes each snapshot into its own directory under a base directory.
type Writer struct {
	baseDir string

	// Converter renders the facts table for the Markdown export.
	// When nil, the Markdown export omits the table.
	Converter marsnap.Converter
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, conv marsnap.Converter) *Writer {
	return &Writer{baseDir: baseDir, Converter: conv}
}

// WriteSnapshot writes snapshot.json, snapshot.md and, when present,
// facts.html. Files become visible together or not at all.
func (w *Writer) WriteSnapshot(ctx context.Context, snap *marsnap.Snapshot) (err error) {
	if err := snap.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	var factsMD string
	if snap.Facts != nil && w.Converter != nil {
		if factsMD, err = w.Converter.Convert(snap.Facts.HTML()); err != nil {
			return fmt.Errorf("converting facts: %w", err)
		}
	}
	md, err := FormatSnapshot(snap, factsMD)
	if err != nil {
		return err
	}

	st, err := newStage(w.baseDir, DirName(snap))
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = st.abort()
		}
	}()

	if err := st.save(JSONFile, append(data, '\n')); err != nil {
		return err
	}
	if err := st.save(MarkdownFile, []byte(md)); err != nil {
		return err
	}
	if snap.Facts != nil {
		if err := st.save(FactsFile, []byte(snap.Facts.HTML()+"\n")); err != nil {
			return err
		}
	}
	return st.commit()
}
