package storage

import (
	"fmt"

	"github.com/yourusername/storefront/internal/domain/repository"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Open driver nomi bo'yicha omborni ochish
func Open(driver, path string) (repository.KeyValueStore, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite, "":
		return NewSQLiteStore(path)
	case DriverBolt:
		return NewBoltStore(path)
	default:
		return nil, fmt.Errorf("unknown store driver: %q", driver)
	}
}
