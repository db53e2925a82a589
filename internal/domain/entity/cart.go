package entity

// CartItem savatdagi qator (qo'shilgan paytdagi nom va narx nusxasi)
type CartItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CheckoutSummary checkout natijasi
type CheckoutSummary struct {
	Total int64
	Count int
}
