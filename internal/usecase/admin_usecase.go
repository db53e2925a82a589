package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
)

// AdminUseCase admin panel business logic (katalog tahriri faqat login dan keyin)
type AdminUseCase interface {
	// Login admin login qilish
	Login(ctx context.Context, password string) (LoginResult, error)

	// Logout admin logout qilish
	Logout(ctx context.Context) error

	// IsAdmin admin ekanligini tekshirish
	IsAdmin(ctx context.Context) (bool, error)

	// ListProducts admin ro'yxati (migratsiya bilan)
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// Stats mahsulotlar soni va umumiy qiymati
	Stats(ctx context.Context) (entity.CatalogStats, error)

	CreateProduct(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// ResetStore katalogni seed ga qaytarish
	ResetStore(ctx context.Context) error

	// ImportCatalog Excel fayldan katalogni yuklash
	ImportCatalog(ctx context.Context, fileData []byte, filename string) (int, error)

	// ExportCatalog katalogni Excel ga yozish
	ExportCatalog(ctx context.Context, w io.Writer) error

	// Actions admin harakatlari jurnali
	Actions(ctx context.Context) ([]entity.AdminAction, error)
}

type adminUseCase struct {
	gate        CredentialGate
	adminRepo   repository.AdminRepository
	productRepo repository.ProductRepository
	excelParser repository.ExcelParser
	logger      *zap.Logger
}

// NewAdminUseCase yangi AdminUseCase yaratish
func NewAdminUseCase(
	gate CredentialGate,
	adminRepo repository.AdminRepository,
	productRepo repository.ProductRepository,
	excelParser repository.ExcelParser,
	logger *zap.Logger,
) AdminUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &adminUseCase{
		gate:        gate,
		adminRepo:   adminRepo,
		productRepo: productRepo,
		excelParser: excelParser,
		logger:      logger,
	}
}

// Login parol tekshirilib, muvaffaqiyatli bo'lsa sessiya ochiladi
func (u *adminUseCase) Login(ctx context.Context, password string) (LoginResult, error) {
	result, err := u.gate.Login(ctx, password)
	if err != nil || !result.Granted {
		return result, err
	}

	now := time.Now()
	session := entity.AdminSession{
		IsAdmin:      true,
		LoginTime:    now,
		LastActivity: now,
	}
	if err := u.adminRepo.CreateSession(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	u.logAction(ctx, "login", "Admin successfully logged in")

	// Katalog tayyorlanadi (seed yoki migratsiya); buzilgan katalog loginni to'xtatmaydi
	if _, err := u.productRepo.Load(ctx); err != nil {
		u.logger.Warn("catalog could not be loaded after login", zap.Error(err))
	}
	return result, nil
}

// Logout admin logout qilish
func (u *adminUseCase) Logout(ctx context.Context) error {
	return u.adminRepo.DeleteSession(ctx)
}

// IsAdmin admin ekanligini tekshirish
func (u *adminUseCase) IsAdmin(ctx context.Context) (bool, error) {
	return u.adminRepo.IsAdmin(ctx)
}

// requireAdmin sessiyani tekshirib faolligini yangilaydi
func (u *adminUseCase) requireAdmin(ctx context.Context) error {
	isAdmin, err := u.adminRepo.IsAdmin(ctx)
	if err != nil {
		return err
	}
	if !isAdmin {
		return entity.ErrNotAuthorized
	}
	return u.adminRepo.Touch(ctx)
}

// ListProducts admin ro'yxati
func (u *adminUseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	catalog, err := u.productRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Products, nil
}

// Stats mahsulotlar soni va narxlar yig'indisi
func (u *adminUseCase) Stats(ctx context.Context) (entity.CatalogStats, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return entity.CatalogStats{}, err
	}

	products, err := u.productRepo.List(ctx, "")
	if err != nil {
		return entity.CatalogStats{}, err
	}

	stats := entity.CatalogStats{Count: len(products)}
	for _, p := range products {
		stats.TotalValue += p.Price
	}
	return stats, nil
}

// CreateProduct yangi mahsulot qo'shish
func (u *adminUseCase) CreateProduct(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	product, err := u.productRepo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	u.logAction(ctx, "create_product", fmt.Sprintf("Created %s (%s)", product.ID, product.Category))
	return product, nil
}

// UpdateProduct mahsulotni tahrirlash
func (u *adminUseCase) UpdateProduct(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	product, err := u.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	u.logAction(ctx, "update_product", fmt.Sprintf("Updated %s", id))
	return product, nil
}

// DeleteProduct mahsulotni o'chirish
func (u *adminUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := u.requireAdmin(ctx); err != nil {
		return err
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logAction(ctx, "delete_product", fmt.Sprintf("Deleted %s", id))
	return nil
}

// ResetStore katalogni seed ga qaytarish va qayta yuklash
func (u *adminUseCase) ResetStore(ctx context.Context) error {
	if err := u.requireAdmin(ctx); err != nil {
		return err
	}

	if err := u.productRepo.ResetToSeed(ctx); err != nil {
		return fmt.Errorf("failed to reset catalog: %w", err)
	}

	u.logAction(ctx, "reset_store", "Catalog reset to seed data")
	return nil
}

// ImportCatalog Excel fayldan katalogni yuklash (butun katalog almashtiriladi)
func (u *adminUseCase) ImportCatalog(ctx context.Context, fileData []byte, filename string) (int, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return 0, err
	}

	drafts, err := u.excelParser.ParseProductsFromBytes(ctx, fileData, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to parse excel: %w", err)
	}

	products, err := u.productRepo.Import(ctx, drafts)
	if err != nil {
		return 0, fmt.Errorf("failed to import catalog: %w", err)
	}

	u.logAction(ctx, "import_catalog", fmt.Sprintf("Imported %d products from %s", len(products), filename))
	return len(products), nil
}

// ExportCatalog katalogni Excel ga yozish
func (u *adminUseCase) ExportCatalog(ctx context.Context, w io.Writer) error {
	if err := u.requireAdmin(ctx); err != nil {
		return err
	}

	products, err := u.productRepo.List(ctx, "")
	if err != nil {
		return err
	}
	return u.excelParser.WriteCatalog(ctx, w, products)
}

// Actions admin harakatlari jurnali
func (u *adminUseCase) Actions(ctx context.Context) ([]entity.AdminAction, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.adminRepo.Actions(ctx)
}

func (u *adminUseCase) logAction(ctx context.Context, name, details string) {
	action := entity.AdminAction{
		ID:        uuid.New().String(),
		Action:    name,
		Details:   details,
		Timestamp: time.Now(),
	}
	_ = u.adminRepo.LogAction(ctx, action)
	u.logger.Info("admin action", zap.String("action", name), zap.String("details", details))
}
