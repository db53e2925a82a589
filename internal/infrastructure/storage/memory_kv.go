package storage

import (
	"context"
	"sync"

	"github.com/yourusername/storefront/internal/domain/repository"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore in-memory kalit-qiymat ombori (testlar va vaqtinchalik ishga tushirish uchun)
func NewMemoryStore() repository.KeyValueStore {
	return &memoryStore{
		data: make(map[string]string),
	}
}

// Get kalit bo'yicha qiymatni olish
func (m *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.data[key]
	return value, exists, nil
}

// Set qiymatni yozish
func (m *memoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

// Delete kalitni o'chirish
func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *memoryStore) Close() error { return nil }
