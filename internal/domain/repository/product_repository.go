package repository

import (
	"context"

	"github.com/yourusername/storefront/internal/domain/entity"
)

// ProductRepository mahsulotlar katalogi bilan ishlash uchun interface
type ProductRepository interface {
	// Load katalogni o'qish (birinchi ishga tushishda seed, keyin migratsiya)
	Load(ctx context.Context) (*entity.ProductCatalog, error)

	// Create yangi mahsulot qo'shish
	Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error)

	// Update mahsulotni tahrirlash
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)

	// Delete mahsulotni o'chirish
	Delete(ctx context.Context, id string) error

	// ResetToSeed katalogni boshlang'ich holatga qaytarish
	ResetToSeed(ctx context.Context) error

	// List barcha (yoki kategoriya bo'yicha) mahsulotlar, saqlangan tartibda
	List(ctx context.Context, category string) ([]entity.Product, error)

	// GetByID ID bo'yicha mahsulotni olish
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// Import butun katalogni draftlar bilan almashtirish (hammasi tekshiriladi, keyin yoziladi)
	Import(ctx context.Context, drafts []entity.ProductDraft) ([]entity.Product, error)
}
