package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/osmeac/pkg/models"
)

// fakeClock makes timestamps and ids deterministic for the duration of a
// test: every call to now advances one second.
func fakeClock(t *testing.T) {
	t.Helper()
	origNow, origID := now, newID

	tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seq := 0
	now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	newID = func() string {
		seq++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", seq)
	}
	t.Cleanup(func() { now, newID = origNow, origID })
}

// testContract exercises the behaviour every backend shares.
func testContract(t *testing.T, open func(t *testing.T) Store) {
	ctx := context.Background()
	example := models.ExampleOrder()

	t.Run("current order round trip", func(t *testing.T) {
		s := open(t)
		assert.Equal(t, models.EmptyOrder(), s.LoadCurrent(ctx))

		require.NoError(t, s.SaveCurrent(ctx, example))
		if diff := cmp.Diff(example, s.LoadCurrent(ctx)); diff != "" {
			t.Errorf("LoadCurrent mismatch (-want +got):\n%s", diff)
		}

		edited := example
		edited.Mission.Who = "2nd Squad"
		require.NoError(t, s.SaveCurrent(ctx, edited))
		assert.Equal(t, "2nd Squad", s.LoadCurrent(ctx).Mission.Who)

		require.NoError(t, s.ClearCurrent(ctx))
		assert.Equal(t, models.EmptyOrder(), s.LoadCurrent(ctx))
		require.NoError(t, s.ClearCurrent(ctx))
	})

	t.Run("named orders", func(t *testing.T) {
		fakeClock(t)
		s := open(t)
		assert.Empty(t, s.ListSaved(ctx))

		first, err := s.SaveNamed(ctx, "  Raid on OBJ Bravo ", example)
		require.NoError(t, err)
		assert.Equal(t, "Raid on OBJ Bravo", first.Name)
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, first.CreatedAt, first.UpdatedAt)

		second, err := s.SaveNamed(ctx, "Patrol", models.EmptyOrder())
		require.NoError(t, err)

		list := s.ListSaved(ctx)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)

		got, ok := s.LoadNamed(ctx, first.ID)
		require.True(t, ok)
		if diff := cmp.Diff(first, got); diff != "" {
			t.Errorf("LoadNamed mismatch (-want +got):\n%s", diff)
		}

		edited := example
		edited.Command.TimeHack = "0600"
		require.NoError(t, s.UpdateNamed(ctx, first.ID, edited))
		got, ok = s.LoadNamed(ctx, first.ID)
		require.True(t, ok)
		assert.Equal(t, "0600", got.Data.Command.TimeHack)
		assert.Equal(t, first.CreatedAt, got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(first.UpdatedAt))

		list = s.ListSaved(ctx)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID, "updated order moves to the top")

		require.NoError(t, s.DeleteNamed(ctx, second.ID))
		require.NoError(t, s.DeleteNamed(ctx, second.ID))
		_, ok = s.LoadNamed(ctx, second.ID)
		assert.False(t, ok)
		assert.Len(t, s.ListSaved(ctx), 1)
	})

	t.Run("unknown ids", func(t *testing.T) {
		s := open(t)
		assert.ErrorIs(t, s.UpdateNamed(ctx, "missing", example), ErrNotFound)
		_, ok := s.LoadNamed(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("empty name", func(t *testing.T) {
		s := open(t)
		_, err := s.SaveNamed(ctx, "   ", example)
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.Empty(t, s.ListSaved(ctx))
	})

	t.Run("put keeps id and timestamps", func(t *testing.T) {
		s := open(t)
		created := time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)
		saved := models.SavedOrder{
			ID:        "imported-1",
			Name:      "Ambush",
			Data:      example,
			CreatedAt: created,
			UpdatedAt: created.Add(time.Hour),
		}
		require.NoError(t, s.PutNamed(ctx, saved))

		saved.Name = "Ambush (rev)"
		require.NoError(t, s.PutNamed(ctx, saved))

		got, ok := s.LoadNamed(ctx, "imported-1")
		require.True(t, ok)
		if diff := cmp.Diff(saved, got); diff != "" {
			t.Errorf("PutNamed mismatch (-want +got):\n%s", diff)
		}
		assert.Len(t, s.ListSaved(ctx), 1)
	})
}
