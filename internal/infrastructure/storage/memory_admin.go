package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
)

// SessionTimeout admin sessiyasining faolsizlik muddati
const SessionTimeout = 24 * time.Hour

type memoryAdminRepository struct {
	mu      sync.RWMutex
	session *entity.AdminSession
	actions []entity.AdminAction
	now     func() time.Time
}

// NewMemoryAdminRepository in-memory admin repository yaratish (sessiya jarayon ichida yashaydi)
func NewMemoryAdminRepository() repository.AdminRepository {
	return newMemoryAdminRepository(time.Now)
}

func newMemoryAdminRepository(now func() time.Time) *memoryAdminRepository {
	return &memoryAdminRepository{
		actions: []entity.AdminAction{},
		now:     now,
	}
}

// CreateSession admin sessiyasini yaratish
func (m *memoryAdminRepository) CreateSession(ctx context.Context, session entity.AdminSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastActivity = m.now()
	m.session = &session
	return nil
}

// Touch sessiya faolligini yangilash
func (m *memoryAdminRepository) Touch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		m.session.LastActivity = m.now()
	}
	return nil
}

// DeleteSession sessiyani o'chirish (logout)
func (m *memoryAdminRepository) DeleteSession(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	return nil
}

// IsAdmin sessiya aktivligini tekshirish
func (m *memoryAdminRepository) IsAdmin(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return false, nil
	}

	// Session timeout tekshirish (24 soat)
	if m.now().Sub(m.session.LastActivity) > SessionTimeout {
		return false, nil
	}

	return m.session.IsAdmin, nil
}

// LogAction admin harakatini loglash
func (m *memoryAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	return nil
}

// Actions harakatlar jurnali nusxasi
func (m *memoryAdminRepository) Actions(ctx context.Context) ([]entity.AdminAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.AdminAction, len(m.actions))
	copy(out, m.actions)
	return out, nil
}
