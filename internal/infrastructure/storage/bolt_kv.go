package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/yourusername/storefront/internal/domain/repository"
)

var boltBucket = []byte("storefront")

type boltStore struct {
	db *bolt.DB
}

// NewBoltStore bbolt fayli asosidagi kalit-qiymat ombori
func NewBoltStore(dbPath string) (repository.KeyValueStore, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt ochilmadi: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bucket yaratib bo'lmadi: %w", err)
	}

	return &boltStore{db: db}, nil
}

// Get kalit bo'yicha qiymatni olish
func (b *boltStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		// raw faqat tranzaksiya ichida yaroqli
		value = string(raw)
		found = true
		return nil
	})
	return value, found, err
}

// Set qiymatni yozish
func (b *boltStore) Set(ctx context.Context, key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
}

// Delete kalitni o'chirish
func (b *boltStore) Delete(ctx context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
}

func (b *boltStore) Close() error {
	return b.db.Close()
}
