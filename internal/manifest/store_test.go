package manifest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeTestSuite runs the same checks against any Store implementation
func storeTestSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("SaveAndGet", func(t *testing.T) {
		store := newStore(t)

		run := NewRun(42)
		run.Record("salesmen", "out/vendedores.txt", 5, 5, 180, nil)
		run.Record("sales", "out/vendedor_1.txt", 10, 3, 40, errors.New("disk full"))
		run.Finish()

		require.NoError(t, store.SaveRun(run))

		got, err := store.GetRun(run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, uint64(42), got.Seed)
		assert.True(t, got.StartedAt.Equal(run.StartedAt))
		assert.True(t, got.FinishedAt.Equal(run.FinishedAt))
		assert.Equal(t, run.Files, got.Files)
		assert.True(t, got.Failed())
	})

	t.Run("GetMissing", func(t *testing.T) {
		store := newStore(t)

		_, err := store.GetRun("does-not-exist")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		store := newStore(t)

		run := NewRun(1)
		require.NoError(t, store.SaveRun(run))

		run.Record("products", "productos.txt", 2, 2, 30, nil)
		require.NoError(t, store.SaveRun(run))

		got, err := store.GetRun(run.ID)
		require.NoError(t, err)
		assert.Len(t, got.Files, 1)

		runs, err := store.LoadRuns()
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})

	t.Run("LoadRunsNewestFirst", func(t *testing.T) {
		store := newStore(t)

		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		var ids []string
		for i := range 3 {
			run := NewRun(uint64(i))
			run.StartedAt = base.Add(time.Duration(i) * time.Hour)
			ids = append(ids, run.ID)
			require.NoError(t, store.SaveRun(run))
		}

		runs, err := store.LoadRuns()
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, ids[2], runs[0].ID)
		assert.Equal(t, ids[1], runs[1].ID)
		assert.Equal(t, ids[0], runs[2].ID)
	})

	t.Run("LastRunID", func(t *testing.T) {
		store := newStore(t)

		last, err := store.LastRunID()
		require.NoError(t, err)
		assert.Empty(t, last)

		first, second := NewRun(1), NewRun(2)
		require.NoError(t, store.SaveRun(first))
		require.NoError(t, store.SaveRun(second))

		last, err = store.LastRunID()
		require.NoError(t, err)
		assert.Equal(t, second.ID, last)

		// re-saving an older run makes it the latest write
		require.NoError(t, store.SaveRun(first))
		last, err = store.LastRunID()
		require.NoError(t, err)
		assert.Equal(t, first.ID, last)
	})

	t.Run("LoadRunsEmpty", func(t *testing.T) {
		store := newStore(t)

		runs, err := store.LoadRuns()
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestMemoryStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestMemoryStoreCopiesOnSave(t *testing.T) {
	store := NewMemoryStore()

	run := NewRun(0)
	require.NoError(t, store.SaveRun(run))
	run.Record("salesmen", "x", 1, 1, 1, nil)

	got, err := store.GetRun(run.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Files)
}

func TestRun(t *testing.T) {
	a := NewRun(7)
	b := NewRun(7)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.StartedAt.IsZero())
	assert.True(t, a.FinishedAt.IsZero())

	a.Record("salesmen", "vendedores.txt", 5, 5, 100, nil)
	a.Record("products", "productos.txt", 5, 5, 90, nil)
	assert.False(t, a.Failed())
	assert.Equal(t, int64(190), a.TotalBytes())

	a.Record("sales", "vendedor_1.txt", 10, 0, 0, errors.New("permission denied"))
	assert.True(t, a.Failed())
	assert.Equal(t, "permission denied", a.Files[2].Error)

	a.Finish()
	assert.False(t, a.FinishedAt.Before(a.StartedAt))
}
