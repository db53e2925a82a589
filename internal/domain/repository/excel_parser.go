package repository

import (
	"context"
	"io"

	"github.com/yourusername/storefront/internal/domain/entity"
)

// ExcelParser katalogni Excel fayldan o'qish va Excel ga yozish
type ExcelParser interface {
	// ParseProductsFromBytes byte array dan parse qilish
	ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.ProductDraft, error)

	// WriteCatalog katalogni xlsx ko'rinishida yozish
	WriteCatalog(ctx context.Context, w io.Writer, products []entity.Product) error
}
