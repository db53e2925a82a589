package storage

import "github.com/yourusername/storefront/internal/domain/entity"

// SeedProducts boshlang'ich katalog (har chaqiruvda yangi nusxa)
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Lamborghini Veneno", Price: 2500, Category: entity.CategoryCars, Img: "https://placehold.co/600x400/020c1b/00f0ff?text=Lambo+Veneno", Badge: "جديد", Availability: true},
		{ID: "p2", Name: "Nissan GTR R35", Price: 1500, Category: entity.CategoryCars, Img: "https://placehold.co/600x400/020c1b/00f0ff?text=GTR+R35", Availability: true},
		{ID: "p3", Name: "Rolls Royce Cullinan", Price: 3000, Category: entity.CategoryCars, Img: "https://placehold.co/600x400/020c1b/00f0ff?text=Rolls+Royce", Badge: "فخم", Availability: true},
		{ID: "p4", Name: "فيلا فاخرة (Vinewood)", Price: 15000, Category: entity.CategoryRealEstate, Img: "https://placehold.co/600x400/0a192f/00f0ff?text=Luxury+Villa", Availability: true},
		{ID: "p5", Name: "شقة فاخرة (الأبراج)", Price: 5000, Category: entity.CategoryRealEstate, Img: "https://placehold.co/600x400/0a192f/00f0ff?text=Luxury+Apt", Availability: true},
		{ID: "p6", Name: "قصر عصابة (Hood)", Price: 20000, Category: entity.CategoryRealEstate, Img: "https://placehold.co/600x400/0a192f/00f0ff?text=Gang+Mansion", Badge: "نادر", Availability: true},
		{ID: "s1", Name: "خدمة: شخصية ثانية", Price: 5000, Category: entity.CategoryServices, Img: "https://placehold.co/600x400/0f172a/00f0ff?text=New+Character", Badge: "مطلوب", Availability: true},
		{ID: "s2", Name: "خدمة: حذف شخصية", Price: 2000, Category: entity.CategoryServices, Img: "https://placehold.co/600x400/ef4444/ffffff?text=Delete+Char", Availability: true},
	}
}

// seedServices seed dagi xizmatlar (migratsiya uchun)
func seedServices() []entity.Product {
	var services []entity.Product
	for _, p := range SeedProducts() {
		if p.Category == entity.CategoryServices {
			services = append(services, p)
		}
	}
	return services
}
