package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
	"github.com/yourusername/storefront/internal/infrastructure/security"
	"github.com/yourusername/storefront/internal/infrastructure/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// countingVerifier Verify chaqiruvlarini sanaydi
type countingVerifier struct {
	repository.CredentialVerifier
	calls int
}

func (v *countingVerifier) Verify(ctx context.Context, candidate string) (bool, error) {
	v.calls++
	return v.CredentialVerifier.Verify(ctx, candidate)
}

func newTestGate(t *testing.T) (*credentialGate, *fakeClock, *countingVerifier, repository.KeyValueStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	verifier := &countingVerifier{CredentialVerifier: security.NewStaticVerifier(security.DefaultAdminPassword)}
	gate := newCredentialGate(storage.NewAttemptRepository(store), verifier, DefaultGatePolicy(), nil, clock.Now)
	return gate, clock, verifier, store
}

func TestLockoutThreshold(t *testing.T) {
	ctx := context.Background()
	gate, _, _, _ := newTestGate(t)

	for i := 1; i <= 2; i++ {
		outcome, err := gate.RecordFailure(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.AttemptRemaining, outcome)

		status, err := gate.CheckLockout(ctx)
		require.NoError(t, err)
		assert.False(t, status.Locked, "after %d failures", i)
	}

	outcome, err := gate.RecordFailure(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.LockedOut, outcome)

	status, err := gate.CheckLockout(ctx)
	require.NoError(t, err)
	assert.True(t, status.Locked)
	assert.Equal(t, 5, status.RemainingMinutes)
}

func TestCheckLockoutRemainingMinutesRoundsUp(t *testing.T) {
	ctx := context.Background()
	gate, clock, _, _ := newTestGate(t)

	for i := 0; i < 3; i++ {
		_, err := gate.RecordFailure(ctx)
		require.NoError(t, err)
	}

	clock.Advance(4*time.Minute + 30*time.Second)
	status, err := gate.CheckLockout(ctx)
	require.NoError(t, err)
	assert.True(t, status.Locked)
	assert.Equal(t, 1, status.RemainingMinutes)

	clock.Advance(30 * time.Second)
	status, err = gate.CheckLockout(ctx)
	require.NoError(t, err)
	assert.False(t, status.Locked, "lockout ends exactly at the deadline")
}

func TestCheckLockoutDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	gate, _, _, store := newTestGate(t)

	_, err := gate.RecordFailure(ctx)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := gate.CheckLockout(ctx)
		require.NoError(t, err)
	}

	raw, ok, err := store.Get(ctx, storage.AttemptsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", raw)
	_, ok, _ = store.Get(ctx, storage.LockoutKey)
	assert.False(t, ok)
}

func TestLoginResetAfterSuccess(t *testing.T) {
	ctx := context.Background()
	gate, _, _, _ := newTestGate(t)

	for i := 0; i < 2; i++ {
		res, err := gate.Login(ctx, "wrong")
		require.NoError(t, err)
		assert.False(t, res.Granted)
		assert.Equal(t, entity.AttemptRemaining, res.Outcome)
	}

	res, err := gate.Login(ctx, security.DefaultAdminPassword)
	require.NoError(t, err)
	assert.True(t, res.Granted)

	status, err := gate.CheckLockout(ctx)
	require.NoError(t, err)
	assert.False(t, status.Locked)

	// hisoblagich tozalangan: yana bitta xato lockout bermaydi
	outcome, err := gate.RecordFailure(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.AttemptRemaining, outcome)
}

func TestLoginShortCircuitsWhileLocked(t *testing.T) {
	ctx := context.Background()
	gate, _, verifier, store := newTestGate(t)

	for i := 0; i < 3; i++ {
		_, err := gate.Login(ctx, "bad")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, verifier.calls)

	res, err := gate.Login(ctx, security.DefaultAdminPassword)
	require.ErrorIs(t, err, entity.ErrLockedOut)
	assert.False(t, res.Granted)

	var locked *entity.LockedOutError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 5, locked.RemainingMinutes)

	assert.Equal(t, 3, verifier.calls, "verify must not run while locked")
	raw, _, _ := store.Get(ctx, storage.AttemptsKey)
	assert.Equal(t, "3", raw, "attempts must not grow while locked")
}

func TestLockoutExpiryKeepsCounter(t *testing.T) {
	ctx := context.Background()
	gate, clock, _, _ := newTestGate(t)

	for i := 0; i < 3; i++ {
		_, err := gate.Login(ctx, "bad")
		require.NoError(t, err)
	}
	clock.Advance(DefaultLockoutDuration + time.Second)

	res, err := gate.Login(ctx, "bad")
	require.NoError(t, err)
	assert.Equal(t, entity.LockedOut, res.Outcome, "next failure after expiry re-locks")

	clock.Advance(DefaultLockoutDuration + time.Second)
	res, err = gate.Login(ctx, security.DefaultAdminPassword)
	require.NoError(t, err)
	assert.True(t, res.Granted)
}

func TestLockoutSurvivesNewGate(t *testing.T) {
	ctx := context.Background()
	gate, clock, verifier, store := newTestGate(t)

	for i := 0; i < 3; i++ {
		_, err := gate.RecordFailure(ctx)
		require.NoError(t, err)
	}

	// sahifa qayta yuklangandek: yangi gate, o'sha ombor
	reloaded := newCredentialGate(storage.NewAttemptRepository(store), verifier, DefaultGatePolicy(), nil, clock.Now)
	status, err := reloaded.CheckLockout(ctx)
	require.NoError(t, err)
	assert.True(t, status.Locked)
}

func TestGatePolicyDefaults(t *testing.T) {
	g := newCredentialGate(nil, nil, GatePolicy{}, nil, time.Now)
	assert.Equal(t, DefaultGatePolicy(), g.policy)
}
