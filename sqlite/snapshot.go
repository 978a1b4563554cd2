package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/marsnap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ marsnap.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements marsnap.SnapshotService using SQLite.
// Nil snapshot fields are stored as NULL; facts and gallery as JSON.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

const snapshotColumns = "id, headline, summary, featured_image, facts, gallery, fingerprint, captured_at"

// CreateSnapshot stores a snapshot under a newly generated ID.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *marsnap.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	var facts sql.NullString
	if snap.Facts != nil {
		data, err := json.Marshal(snap.Facts)
		if err != nil {
			return fmt.Errorf("failed to encode facts: %w", err)
		}
		facts = sql.NullString{String: string(data), Valid: true}
	}
	gallery := snap.Gallery
	if gallery == nil {
		gallery = []marsnap.GalleryItem{}
	}
	galleryJSON, err := json.Marshal(gallery)
	if err != nil {
		return fmt.Errorf("failed to encode gallery: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, nullString(snap.Headline), nullString(snap.Summary), nullString(snap.FeaturedImageURL),
		facts, string(galleryJSON), snap.Fingerprint, snap.CapturedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	snap.ID = id
	return nil
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*marsnap.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+snapshotColumns+" FROM snapshots WHERE id = ?", id)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, marsnap.Errorf(marsnap.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter marsnap.SnapshotFilter) ([]*marsnap.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + snapshotColumns + " FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Fingerprint != nil {
		query.WriteString(" AND fingerprint = ?")
		args = append(args, *filter.Fingerprint)
	}

	query.WriteString(" ORDER BY captured_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*marsnap.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return marsnap.Errorf(marsnap.ENOTFOUND, "snapshot not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(sc scanner) (*marsnap.Snapshot, error) {
	var snap marsnap.Snapshot
	var headline, summary, image, facts sql.NullString
	var gallery, capturedAt string

	if err := sc.Scan(&snap.ID, &headline, &summary, &image, &facts, &gallery,
		&snap.Fingerprint, &capturedAt); err != nil {
		return nil, err
	}

	snap.Headline = stringPtr(headline)
	snap.Summary = stringPtr(summary)
	snap.FeaturedImageURL = stringPtr(image)

	if facts.Valid {
		snap.Facts = &marsnap.FactsTable{}
		if err := json.Unmarshal([]byte(facts.String), snap.Facts); err != nil {
			return nil, fmt.Errorf("failed to decode facts: %w", err)
		}
	}
	snap.Gallery = []marsnap.GalleryItem{}
	if err := json.Unmarshal([]byte(gallery), &snap.Gallery); err != nil {
		return nil, fmt.Errorf("failed to decode gallery: %w", err)
	}

	var err error
	snap.CapturedAt, err = parseRFC3339(capturedAt, "captured_at")
	if err != nil {
		return nil, err
	}

	return &snap, nil
}
