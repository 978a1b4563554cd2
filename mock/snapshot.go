package mock

import (
	"context"

	"github.com/fwojciec/marsnap"
)

var _ marsnap.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of marsnap.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snap *marsnap.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*marsnap.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter marsnap.SnapshotFilter) ([]*marsnap.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *marsnap.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*marsnap.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter marsnap.SnapshotFilter) ([]*marsnap.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}

var _ marsnap.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter is a mock implementation of marsnap.SnapshotWriter.
type SnapshotWriter struct {
	WriteSnapshotFn func(ctx context.Context, snap *marsnap.Snapshot) error
}

func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, snap *marsnap.Snapshot) error {
	return w.WriteSnapshotFn(ctx, snap)
}

var _ marsnap.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of marsnap.Scraper.
type Scraper struct {
	RunFn func(ctx context.Context) (*marsnap.Snapshot, error)
}

func (s *Scraper) Run(ctx context.Context) (*marsnap.Snapshot, error) {
	return s.RunFn(ctx)
}
