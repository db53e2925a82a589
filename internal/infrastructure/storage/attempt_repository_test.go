package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewAttemptRepository(store)

	state, err := repo.GetState(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.Attempts)
	assert.True(t, state.LockoutUntil.IsZero())

	until := time.UnixMilli(1_700_000_300_000)
	require.NoError(t, repo.SaveAttempts(ctx, 3))
	require.NoError(t, repo.SaveLockout(ctx, until))

	raw, ok, err := store.Get(ctx, AttemptsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "3", raw)

	raw, ok, err = store.Get(ctx, LockoutKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1700000300000", raw)

	state, err = repo.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Attempts)
	assert.True(t, until.Equal(state.LockoutUntil))

	require.NoError(t, repo.Clear(ctx))
	_, ok, _ = store.Get(ctx, AttemptsKey)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, LockoutKey)
	assert.False(t, ok)
}

func TestAttemptRepositoryToleratesGarbage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, AttemptsKey, "abc"))
	require.NoError(t, store.Set(ctx, LockoutKey, "soon"))

	state, err := NewAttemptRepository(store).GetState(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.Attempts)
	assert.True(t, state.LockoutUntil.IsZero())
}

func TestAttemptRepositoryReadsDecimal(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		raw  string
		want int
	}{
		{"010", 10},
		{"09", 9},
		{" 2 ", 2},
		{"0x10", 0},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			store := NewMemoryStore()
			require.NoError(t, store.Set(ctx, AttemptsKey, tc.raw))
			require.NoError(t, store.Set(ctx, LockoutKey, "01700000300000"))

			state, err := NewAttemptRepository(store).GetState(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, state.Attempts)
			assert.Equal(t, int64(1_700_000_300_000), state.LockoutUntil.UnixMilli())
		})
	}
}
