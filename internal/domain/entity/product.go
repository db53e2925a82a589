package entity

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kategoriyalar (ochiq ro'yxat, yangilari qo'shilishi mumkin)
const (
	CategoryCars       = "cars"
	CategoryRealEstate = "real-estate"
	CategoryServices   = "services"

	// CategoryAll storefront dagi "hammasi" filtri
	CategoryAll = "all"
)

// DefaultNewBadge admin yaratgan mahsulotlarga qo'yiladigan belgi ("yangi")
const DefaultNewBadge = "جديد"

// Product katalogdagi mahsulot yozuvi
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Category     string `json:"category"`
	Img          string `json:"img"`
	Badge        string `json:"badge,omitempty"`
	Availability bool   `json:"availability"`
}

// UnmarshalJSON eski yozuvlarda availability bo'lmasa true deb qabul qiladi
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var raw struct {
		plain
		Badge        *string `json:"badge"`
		Availability *bool   `json:"availability"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Product(raw.plain)
	if raw.Badge != nil {
		p.Badge = *raw.Badge
	}
	p.Availability = raw.Availability == nil || *raw.Availability
	return nil
}

// ProductDraft yangi mahsulot uchun kiritilgan ma'lumot
type ProductDraft struct {
	Name     string
	Price    int64
	Img      string
	Category string
	Badge    string
}

// ProductPatch mahsulotni tahrirlash (name, price, img, availability almashtiriladi)
type ProductPatch struct {
	Name         string
	Price        int64
	Img          string
	Availability bool
}

// ProductCatalog butun katalog snapshot i, bitta birlik sifatida saqlanadi
type ProductCatalog struct {
	Products []Product
}

// CatalogStats admin panel statistikasi
type CatalogStats struct {
	Count      int
	TotalValue int64
}
