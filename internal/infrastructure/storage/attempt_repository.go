package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
)

const (
	AttemptsKey = "security_attempts"
	LockoutKey  = "security_lockout"
)

type attemptRepository struct {
	store repository.KeyValueStore
}

// NewAttemptRepository login urinishlarini ombor kalitlarida saqlovchi repository
func NewAttemptRepository(store repository.KeyValueStore) repository.AttemptRepository {
	return &attemptRepository{store: store}
}

// GetState hisoblagich va lockout vaqtini o'qish.
// Buzilgan qiymatlar nol deb olinadi.
func (a *attemptRepository) GetState(ctx context.Context) (entity.AttemptState, error) {
	var state entity.AttemptState

	raw, ok, err := a.store.Get(ctx, AttemptsKey)
	if err != nil {
		return state, fmt.Errorf("failed to read attempts: %w", err)
	}
	if ok {
		state.Attempts = int(parseDecimal(raw))
	}

	raw, ok, err = a.store.Get(ctx, LockoutKey)
	if err != nil {
		return state, fmt.Errorf("failed to read lockout: %w", err)
	}
	if ok {
		if ms := parseDecimal(raw); ms > 0 {
			state.LockoutUntil = time.UnixMilli(ms)
		}
	}

	return state, nil
}

// parseDecimal faqat o'nlik son; "010" = 10, xato qiymat = 0
func parseDecimal(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SaveAttempts hisoblagichni yozish
func (a *attemptRepository) SaveAttempts(ctx context.Context, attempts int) error {
	return a.store.Set(ctx, AttemptsKey, strconv.Itoa(attempts))
}

// SaveLockout lockout tugash vaqtini epoch millisekundda yozish
func (a *attemptRepository) SaveLockout(ctx context.Context, until time.Time) error {
	return a.store.Set(ctx, LockoutKey, strconv.FormatInt(until.UnixMilli(), 10))
}

// Clear ikkala kalitni o'chirish
func (a *attemptRepository) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, AttemptsKey); err != nil {
		return err
	}
	return a.store.Delete(ctx, LockoutKey)
}
