package repository

import "context"

// KeyValueStore doimiy kalit-qiymat ombori (yagona haqiqat manbai).
// Butun qiymat bitta yozuvda yoziladi, qisman yangilash yo'q.
type KeyValueStore interface {
	// Get kalit bo'yicha qiymatni olish; ok=false bo'lsa kalit yo'q
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set qiymatni yozish
	Set(ctx context.Context, key, value string) error

	// Delete kalitni o'chirish (kalit bo'lmasa ham xato emas)
	Delete(ctx context.Context, key string) error

	// Close omborni yopish
	Close() error
}
