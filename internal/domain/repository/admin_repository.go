package repository

import (
	"context"
	"time"

	"github.com/yourusername/storefront/internal/domain/entity"
)

// AdminRepository admin sessiyasi va harakatlar jurnali
type AdminRepository interface {
	// CreateSession admin sessiyasini yaratish
	CreateSession(ctx context.Context, session entity.AdminSession) error

	// Touch sessiya faolligini yangilash
	Touch(ctx context.Context) error

	// DeleteSession sessiyani o'chirish (logout)
	DeleteSession(ctx context.Context) error

	// IsAdmin sessiya aktivligini tekshirish
	IsAdmin(ctx context.Context) (bool, error)

	// LogAction admin harakatini loglash
	LogAction(ctx context.Context, action entity.AdminAction) error

	// Actions harakatlar jurnali
	Actions(ctx context.Context) ([]entity.AdminAction, error)
}

// AttemptRepository login urinishlari holatini saqlash
type AttemptRepository interface {
	GetState(ctx context.Context) (entity.AttemptState, error)
	SaveAttempts(ctx context.Context, attempts int) error
	SaveLockout(ctx context.Context, until time.Time) error
	Clear(ctx context.Context) error
}

// CredentialVerifier parolni tekshirish
type CredentialVerifier interface {
	Verify(ctx context.Context, candidate string) (bool, error)
}
