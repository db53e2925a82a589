package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
)

const (
	DefaultMaxAttempts     = 3
	DefaultLockoutDuration = 5 * time.Minute
)

// GatePolicy urinishlar chegarasi va lockout muddati
type GatePolicy struct {
	MaxAttempts     int
	LockoutDuration time.Duration
}

// DefaultGatePolicy 3 ta urinish, 5 daqiqa lockout
func DefaultGatePolicy() GatePolicy {
	return GatePolicy{MaxAttempts: DefaultMaxAttempts, LockoutDuration: DefaultLockoutDuration}
}

// LoginResult bitta login urinish natijasi
type LoginResult struct {
	Granted bool
	Outcome entity.LockoutOutcome
}

// CredentialGate admin paneliga kirishni urinishlar soni bilan cheklash
type CredentialGate interface {
	// CheckLockout lockout holatini o'qish (holat o'zgarmaydi)
	CheckLockout(ctx context.Context) (entity.LockoutStatus, error)

	// Verify parolni tekshirish
	Verify(ctx context.Context, candidate string) (bool, error)

	// RecordFailure muvaffaqiyatsiz urinishni yozish
	RecordFailure(ctx context.Context) (entity.LockoutOutcome, error)

	// ResetAttempts hisoblagich va lockoutni tozalash
	ResetAttempts(ctx context.Context) error

	// Login to'liq protokol: lockout -> verify -> reset yoki failure
	Login(ctx context.Context, candidate string) (LoginResult, error)
}

type credentialGate struct {
	attempts repository.AttemptRepository
	verifier repository.CredentialVerifier
	policy   GatePolicy
	logger   *zap.Logger
	now      func() time.Time
}

// NewCredentialGate yangi CredentialGate yaratish
func NewCredentialGate(
	attempts repository.AttemptRepository,
	verifier repository.CredentialVerifier,
	policy GatePolicy,
	logger *zap.Logger,
) CredentialGate {
	return newCredentialGate(attempts, verifier, policy, logger, time.Now)
}

func newCredentialGate(
	attempts repository.AttemptRepository,
	verifier repository.CredentialVerifier,
	policy GatePolicy,
	logger *zap.Logger,
	now func() time.Time,
) *credentialGate {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = DefaultMaxAttempts
	}
	if policy.LockoutDuration <= 0 {
		policy.LockoutDuration = DefaultLockoutDuration
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &credentialGate{
		attempts: attempts,
		verifier: verifier,
		policy:   policy,
		logger:   logger,
		now:      now,
	}
}

// CheckLockout lockout aktiv bo'lsa qolgan daqiqalarni (yuqoriga yaxlitlab) qaytaradi
func (g *credentialGate) CheckLockout(ctx context.Context) (entity.LockoutStatus, error) {
	state, err := g.attempts.GetState(ctx)
	if err != nil {
		return entity.LockoutStatus{}, err
	}

	now := g.now()
	if !state.Locked(now) {
		return entity.LockoutStatus{}, nil
	}

	return entity.LockoutStatus{
		Locked:           true,
		RemainingMinutes: remainingMinutes(state.LockoutUntil.Sub(now)),
	}, nil
}

func remainingMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}

// Verify parolni verifier orqali tekshirish
func (g *credentialGate) Verify(ctx context.Context, candidate string) (bool, error) {
	return g.verifier.Verify(ctx, candidate)
}

// RecordFailure hisoblagichni oshiradi; chegaraga yetsa lockout o'rnatadi.
// Lockout muddati o'tgandan keyin ham hisoblagich tozalanmaydi, keyingi xato yana lockout beradi.
func (g *credentialGate) RecordFailure(ctx context.Context) (entity.LockoutOutcome, error) {
	state, err := g.attempts.GetState(ctx)
	if err != nil {
		return entity.AttemptRemaining, err
	}

	attempts := state.Attempts + 1
	if err := g.attempts.SaveAttempts(ctx, attempts); err != nil {
		return entity.AttemptRemaining, fmt.Errorf("failed to save attempts: %w", err)
	}

	if attempts < g.policy.MaxAttempts {
		g.logger.Warn("failed admin login", zap.Int("attempts", attempts), zap.Int("max", g.policy.MaxAttempts))
		return entity.AttemptRemaining, nil
	}

	until := g.now().Add(g.policy.LockoutDuration)
	if err := g.attempts.SaveLockout(ctx, until); err != nil {
		return entity.AttemptRemaining, fmt.Errorf("failed to save lockout: %w", err)
	}

	g.logger.Warn("admin login locked out", zap.Int("attempts", attempts), zap.Time("until", until))
	return entity.LockedOut, nil
}

// ResetAttempts faqat muvaffaqiyatli Verify dan keyin chaqiriladi
func (g *credentialGate) ResetAttempts(ctx context.Context) error {
	return g.attempts.Clear(ctx)
}

// Login lockout aktiv bo'lsa parol umuman tekshirilmaydi
func (g *credentialGate) Login(ctx context.Context, candidate string) (LoginResult, error) {
	status, err := g.CheckLockout(ctx)
	if err != nil {
		return LoginResult{}, err
	}
	if status.Locked {
		return LoginResult{Outcome: entity.LockedOut}, &entity.LockedOutError{RemainingMinutes: status.RemainingMinutes}
	}

	ok, err := g.Verify(ctx, candidate)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to verify password: %w", err)
	}

	if ok {
		if err := g.ResetAttempts(ctx); err != nil {
			return LoginResult{}, fmt.Errorf("failed to reset attempts: %w", err)
		}
		return LoginResult{Granted: true}, nil
	}

	outcome, err := g.RecordFailure(ctx)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Outcome: outcome}, nil
}
