package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/marsnap"
	main "github.com/fwojciec/marsnap/cmd/marsnap"
	"github.com/fwojciec/marsnap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "snap-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "snap-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted snapshot snap-1")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(context.Context, string) error {
				t.Fatal("should not delete without --force")
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "snap-1"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, marsnap.EINVALID, marsnap.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing snapshot", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(context.Context, string) error {
				return marsnap.Errorf(marsnap.ENOTFOUND, "snapshot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "nope", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, marsnap.ENOTFOUND, marsnap.ErrorCode(err))
		assert.Contains(t, stderr.String(), "marsnap list")
	})
}
