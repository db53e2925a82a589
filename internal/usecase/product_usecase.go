package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
)

// ProductUseCase storefront (ommaviy ro'yxat) business logic
type ProductUseCase interface {
	// Init katalogni tayyorlash (seed yoki migratsiya)
	Init(ctx context.Context) error

	// List mahsulotlar ro'yxati; "" yoki "all" = hammasi
	List(ctx context.Context, category string) ([]entity.Product, error)

	// Categories mavjud kategoriyalar (birinchi uchragan tartibda)
	Categories(ctx context.Context) ([]string, error)

	// AddToCart mahsulotni savatga nusxalash
	AddToCart(ctx context.Context, cart CartUseCase, productID string) (*entity.Product, error)

	// GetProductsAsText mahsulotlarni text formatda olish
	GetProductsAsText(ctx context.Context, category string) (string, error)
}

type productUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase yangi ProductUseCase yaratish
func NewProductUseCase(productRepo repository.ProductRepository) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
	}
}

// Init katalogni tayyorlash
func (u *productUseCase) Init(ctx context.Context) error {
	_, err := u.productRepo.Load(ctx)
	return err
}

// List mahsulotlar ro'yxati
func (u *productUseCase) List(ctx context.Context, category string) ([]entity.Product, error) {
	return u.productRepo.List(ctx, category)
}

// Categories kategoriyalar ro'yxati
func (u *productUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := u.productRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// AddToCart mavjud bo'lmagan (availability=false) mahsulot savatga qo'shilmaydi
func (u *productUseCase) AddToCart(ctx context.Context, cart CartUseCase, productID string) (*entity.Product, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Availability {
		return nil, fmt.Errorf("%s: %w", product.ID, entity.ErrProductUnavailable)
	}

	cart.AddItem(product.Name, product.Price)
	return product, nil
}

// GetProductsAsText mahsulotlarni kategoriyalar bo'yicha text formatda olish
func (u *productUseCase) GetProductsAsText(ctx context.Context, category string) (string, error) {
	products, err := u.productRepo.List(ctx, category)
	if err != nil {
		return "", err
	}

	if len(products) == 0 {
		return "", fmt.Errorf("no products available")
	}

	var sb strings.Builder

	// Kategoriyalar bo'yicha guruhlash (saqlangan tartibda)
	var order []string
	categoryMap := make(map[string][]entity.Product)
	for _, product := range products {
		cat := product.Category
		if cat == "" {
			cat = "other"
		}
		if _, ok := categoryMap[cat]; !ok {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], product)
	}

	for _, cat := range order {
		sb.WriteString(fmt.Sprintf("[%s]\n", cat))
		for i, p := range categoryMap[cat] {
			sb.WriteString(fmt.Sprintf("%d. %s - %d DA (id: %s)", i+1, p.Name, p.Price, p.ID))
			switch {
			case !p.Availability:
				sb.WriteString(" [sold out]")
			case p.Badge != "":
				sb.WriteString(fmt.Sprintf(" [%s]", p.Badge))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
