package dto

import "time"

// ShopResponse describes a laundry shop.
type ShopResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Rate        float64   `json:"rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PromoResponse describes a promo together with its shop.
type PromoResponse struct {
	ID          int64        `json:"id"`
	ShopID      int64        `json:"shop_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Discount    float64      `json:"discount"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Shop        ShopResponse `json:"shop"`
}
