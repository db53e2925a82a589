package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/yourusername/storefront/internal/domain/entity"
)

// CartUseCase joriy sessiya savati. Saqlanmaydi: qayta ishga tushirishda savat bo'sh.
type CartUseCase interface {
	// AddItem qator qo'shish (bir xil mahsulot ikki marta qo'shilsa ikki qator)
	AddItem(name string, price int64)

	// RemoveItem index bo'yicha o'chirish; index chegaradan tashqarida bo'lsa hech narsa qilmaydi
	RemoveItem(index int)

	CurrentTotal() int64
	CurrentCount() int

	// Items qatorlar nusxasi (ko'rsatish uchun)
	Items() []entity.CartItem

	// Checkout jami summa va sonni qaytaradi, savatni tozalamaydi
	Checkout() (entity.CheckoutSummary, error)
}

type cartUseCase struct {
	mu     sync.RWMutex
	items  []entity.CartItem
	logger *zap.Logger
}

// NewCartUseCase bo'sh savat yaratish
func NewCartUseCase(logger *zap.Logger) CartUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cartUseCase{
		items:  []entity.CartItem{},
		logger: logger,
	}
}

func (c *cartUseCase) AddItem(name string, price int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, entity.CartItem{Name: name, Price: price})
}

func (c *cartUseCase) RemoveItem(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

func (c *cartUseCase) CurrentTotal() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.total()
}

func (c *cartUseCase) total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

func (c *cartUseCase) CurrentCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *cartUseCase) Items() []entity.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *cartUseCase) Checkout() (entity.CheckoutSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.items) == 0 {
		return entity.CheckoutSummary{}, entity.ErrEmptyCart
	}

	summary := entity.CheckoutSummary{Total: c.total(), Count: len(c.items)}
	c.logger.Info("checkout summary", zap.Int64("total", summary.Total), zap.Int("count", summary.Count))
	return summary, nil
}
