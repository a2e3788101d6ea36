package model

import "time"

// Promo is a promotional offer published by a shop.
type Promo struct {
	ID          int64
	ShopID      int64
	Title       string
	Description string
	Discount    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PromoDetail couples a promo with its owning shop.
type PromoDetail struct {
	Promo
	Shop Shop
}
