package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
	"github.com/yourusername/storefront/internal/infrastructure/security"
)

// ProductsKey katalog snapshot i saqlanadigan kalit
const ProductsKey = "storeProducts"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// productRepository katalogni to'liq ombordan o'qiydi va har o'zgarishda darhol yozadi.
// Xotirada alohida holat yo'q. Bir nechta jarayon bir omborga yozsa, oxirgi yozuv
// butun snapshot darajasida g'olib bo'ladi (versiya tamg'asi yo'q).
type productRepository struct {
	store  repository.KeyValueStore
	logger *zap.Logger
	newID  func() string
}

// NewProductRepository ombor ustidagi katalog repository yaratish
func NewProductRepository(store repository.KeyValueStore, logger *zap.Logger) repository.ProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &productRepository{
		store:  store,
		logger: logger,
		newID:  newProductID,
	}
}

func newProductID() string {
	return "c" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Load katalogni o'qish: bo'sh bo'lsa seed yoziladi, aks holda migratsiya
func (r *productRepository) Load(ctx context.Context) (*entity.ProductCatalog, error) {
	products, exists, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	if !exists {
		products = SeedProducts()
		if err := r.write(ctx, products); err != nil {
			return nil, err
		}
		r.logger.Info("catalog initialized from seed", zap.Int("count", len(products)))
		return &entity.ProductCatalog{Products: products}, nil
	}

	if migrated, changed := ensureServices(products); changed {
		if err := r.write(ctx, migrated); err != nil {
			return nil, err
		}
		r.logger.Info("catalog migrated: services category added",
			zap.Int("added", len(migrated)-len(products)))
		products = migrated
	}

	return &entity.ProductCatalog{Products: products}, nil
}

// ensureServices "services" kategoriyasi yo'q bo'lsa seed xizmatlarini oxiriga qo'shadi.
// Tekshiruv har safar saqlangan ma'lumotdan qilinadi, shuning uchun takroriy chaqiruv hech narsa o'zgartirmaydi.
func ensureServices(products []entity.Product) ([]entity.Product, bool) {
	for _, p := range products {
		if p.Category == entity.CategoryServices {
			return products, false
		}
	}
	merged := make([]entity.Product, 0, len(products)+2)
	merged = append(merged, products...)
	merged = append(merged, seedServices()...)
	return merged, true
}

// Create yangi mahsulot qo'shish
func (r *productRepository) Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	products, _, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	product, err := r.buildProduct(draft, products)
	if err != nil {
		return nil, err
	}

	products = append(products, product)
	if err := r.write(ctx, products); err != nil {
		return nil, err
	}

	r.logger.Info("product created", zap.String("id", product.ID), zap.String("category", product.Category))
	return &product, nil
}

func (r *productRepository) buildProduct(draft entity.ProductDraft, existing []entity.Product) (entity.Product, error) {
	name, img, err := validateFields(draft.Name, draft.Price, draft.Img)
	if err != nil {
		return entity.Product{}, err
	}

	badge := draft.Badge
	if badge == "" {
		badge = entity.DefaultNewBadge
	}

	return entity.Product{
		ID:           r.uniqueID(existing),
		Name:         name,
		Price:        draft.Price,
		Category:     strings.TrimSpace(draft.Category),
		Img:          img,
		Badge:        badge,
		Availability: true,
	}, nil
}

func (r *productRepository) uniqueID(existing []entity.Product) string {
	for {
		id := r.newID()
		if indexOf(existing, id) < 0 {
			return id
		}
	}
}

// validateFields nom, narx va rasmni tekshiradi va tozalangan qiymatlarni qaytaradi
func validateFields(name string, price int64, img string) (string, string, error) {
	name = strings.TrimSpace(name)
	img = strings.TrimSpace(img)

	if name == "" {
		return "", "", &entity.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price <= 0 {
		return "", "", &entity.ValidationError{Field: "price", Reason: "must be a positive integer"}
	}
	if img == "" {
		return "", "", &entity.ValidationError{Field: "img", Reason: "must not be empty"}
	}

	return security.Sanitize(name), security.Sanitize(img), nil
}

// Update mahsulotni tahrirlash (id, category, badge o'zgarmaydi)
func (r *productRepository) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	products, _, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return nil, &entity.NotFoundError{ID: id}
	}

	name, img, err := validateFields(patch.Name, patch.Price, patch.Img)
	if err != nil {
		return nil, err
	}

	products[idx].Name = name
	products[idx].Price = patch.Price
	products[idx].Img = img
	products[idx].Availability = patch.Availability

	if err := r.write(ctx, products); err != nil {
		return nil, err
	}

	r.logger.Info("product updated", zap.String("id", id), zap.Bool("availability", patch.Availability))
	updated := products[idx]
	return &updated, nil
}

// Delete mahsulotni o'chirish, qolganlar tartibi saqlanadi
func (r *productRepository) Delete(ctx context.Context, id string) error {
	products, _, err := r.read(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return &entity.NotFoundError{ID: id}
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := r.write(ctx, products); err != nil {
		return err
	}

	r.logger.Info("product deleted", zap.String("id", id))
	return nil
}

// ResetToSeed katalogni seed bilan almashtirish
func (r *productRepository) ResetToSeed(ctx context.Context) error {
	if err := r.write(ctx, SeedProducts()); err != nil {
		return err
	}
	r.logger.Info("catalog reset to seed")
	return nil
}

// List mahsulotlarni saqlangan tartibda olish
func (r *productRepository) List(ctx context.Context, category string) ([]entity.Product, error) {
	products, _, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" || category == entity.CategoryAll {
		return products, nil
	}

	results := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			results = append(results, p)
		}
	}
	return results, nil
}

// GetByID ID bo'yicha mahsulotni olish
func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, _, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(products, id)
	if idx < 0 {
		return nil, &entity.NotFoundError{ID: id}
	}
	return &products[idx], nil
}

// Import butun katalogni almashtirish. Bitta draft xato bo'lsa hech narsa yozilmaydi.
func (r *productRepository) Import(ctx context.Context, drafts []entity.ProductDraft) ([]entity.Product, error) {
	products := make([]entity.Product, 0, len(drafts))
	for i, draft := range drafts {
		product, err := r.buildProduct(draft, products)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		products = append(products, product)
	}

	if err := r.write(ctx, products); err != nil {
		return nil, err
	}

	r.logger.Info("catalog imported", zap.Int("count", len(products)))
	return products, nil
}

func (r *productRepository) read(ctx context.Context) ([]entity.Product, bool, error) {
	raw, exists, err := r.store.Get(ctx, ProductsKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read catalog: %w", err)
	}
	if !exists {
		return []entity.Product{}, false, nil
	}

	var products []entity.Product
	if err := json.UnmarshalFromString(raw, &products); err != nil {
		return nil, true, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, true, nil
}

func (r *productRepository) write(ctx context.Context, products []entity.Product) error {
	raw, err := json.MarshalToString(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := r.store.Set(ctx, ProductsKey, raw); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

func indexOf(products []entity.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
