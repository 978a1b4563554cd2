package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/marsnap"
	main "github.com/fwojciec/marsnap/cmd/marsnap"
	"github.com/fwojciec/marsnap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders table format", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotByIDFn: func(_ context.Context, id string) (*marsnap.Snapshot, error) {
				snap := testSnapshot()
				snap.ID = id
				return snap, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		err := (&main.ShowCmd{ID: "snap-1", Format: "table"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "snap-1")
		assert.Contains(t, out, "Rover Finds Rock")
		assert.Contains(t, out, "Description")
		assert.Contains(t, out, "12,742 km")
		assert.Contains(t, out, "Hemispheres (1)")
		assert.Contains(t, out, "https://marshemispheres.com/images/a.jpg")
	})

	t.Run("aligns wide characters by display width", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotByIDFn: func(context.Context, string) (*marsnap.Snapshot, error) {
				snap := testSnapshot()
				snap.Facts = &marsnap.FactsTable{Rows: []marsnap.FactRow{
					{Description: "火星", Mars: "a", Earth: "b"},
					{Description: "Mass", Mars: "c", Earth: "d"},
				}}
				return snap, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		require.NoError(t, (&main.ShowCmd{ID: "x", Format: "table"}).Run(deps))

		var wide, narrow string
		for _, line := range strings.Split(stdout.String(), "\n") {
			switch {
			case strings.HasPrefix(line, "火星"):
				wide = line
			case strings.HasPrefix(line, "Mass"):
				narrow = line
			}
		}
		// "火星" is four columns wide, like "Mass".
		assert.Equal(t, "火星         a     b", wide)
		assert.Equal(t, "Mass         c     d", narrow)
	})

	t.Run("resolves latest", func(t *testing.T) {
		t.Parallel()

		var gotFilter marsnap.SnapshotFilter
		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter marsnap.SnapshotFilter) ([]*marsnap.Snapshot, error) {
				gotFilter = filter
				snap := testSnapshot()
				snap.ID = "newest"
				return []*marsnap.Snapshot{snap}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		require.NoError(t, (&main.ShowCmd{ID: "latest", Format: "json"}).Run(deps))

		assert.Equal(t, 1, gotFilter.Limit)
		assert.Contains(t, stdout.String(), `"id": "newest"`)
	})

	t.Run("latest with empty store is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(context.Context, marsnap.SnapshotFilter) ([]*marsnap.Snapshot, error) {
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.ShowCmd{ID: "latest"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, marsnap.ENOTFOUND, marsnap.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no snapshots saved yet")
	})

	t.Run("reports missing snapshot", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotByIDFn: func(context.Context, string) (*marsnap.Snapshot, error) {
				return nil, marsnap.Errorf(marsnap.ENOTFOUND, "snapshot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "snapshot not found")
	})
}
