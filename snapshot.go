package marsnap

import (
	"context"
	"html"
	"strings"
	"time"
)

// Facts table column names, in upstream column order.
const (
	ColumnDescription = "Description"
	ColumnMars        = "Mars"
	ColumnEarth       = "Earth"
)

// FactsColumns is the fixed schema every facts table is relabelled to.
var FactsColumns = []string{ColumnDescription, ColumnMars, ColumnEarth}

// Snapshot is the record produced by one full scrape run.
// A nil field means its extraction failed cleanly.
type Snapshot struct {
	ID               string        `json:"id,omitempty"`
	Headline         *string       `json:"news_title"`
	Summary          *string       `json:"news_paragraph"`
	FeaturedImageURL *string       `json:"featured_image"`
	Facts            *FactsTable   `json:"facts"`
	Gallery          []GalleryItem `json:"hemispheres"`
	Fingerprint      string        `json:"fingerprint,omitempty"`
	CapturedAt       time.Time     `json:"last_modified"`
}

// Validate returns an error if the snapshot cannot be stored.
func (s *Snapshot) Validate() error {
	if s.CapturedAt.IsZero() {
		return Errorf(EINVALID, "snapshot capture time required")
	}
	return nil
}

// GalleryItem is one hemisphere image reached from the gallery index page.
type GalleryItem struct {
	ImageURL string `json:"img_url"`
	Title    string `json:"title"`
}

// FactsTable is the Mars/Earth comparison table relabelled to FactsColumns.
type FactsTable struct {
	Rows []FactRow `json:"rows"`
}

// FactRow is one row of the facts table keyed by its Description.
type FactRow struct {
	Description string `json:"Description"`
	Mars        string `json:"Mars"`
	Earth       string `json:"Earth"`
}

// Cells returns the row values in FactsColumns order.
func (r FactRow) Cells() []string {
	return []string{r.Description, r.Mars, r.Earth}
}

// Lookup returns the row whose Description matches key, ignoring case and
// a trailing colon.
func (t *FactsTable) Lookup(key string) (FactRow, bool) {
	norm := func(s string) string {
		return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ":"))
	}
	want := norm(key)
	for _, r := range t.Rows {
		if norm(r.Description) == want {
			return r, true
		}
	}
	return FactRow{}, false
}

// HTML renders the table as a bootstrap-styled HTML fragment suitable for
// direct embedding in a page.
func (t *FactsTable) HTML() string {
	var b strings.Builder
	b.WriteString(`<table class="table table-hover">`)
	b.WriteString("\n<thead>\n<tr>")
	for _, c := range FactsColumns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(c))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, r := range t.Rows {
		b.WriteString("<tr>")
		for _, c := range r.Cells() {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(c))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// SnapshotService represents a service for managing stored snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot and assigns its ID.
	CreateSnapshot(ctx context.Context, snap *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID          *string `json:"id"`
	Fingerprint *string `json:"fingerprint"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SnapshotWriter writes a snapshot to an export destination.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, snap *Snapshot) error
}

// Scraper produces a snapshot by visiting every target once.
type Scraper interface {
	Run(ctx context.Context) (*Snapshot, error)
}
