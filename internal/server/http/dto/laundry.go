package dto

import "time"

// ClaimRequest describes the claim payload. The claim code comes from the
// receipt printed at drop-off.
type ClaimRequest struct {
	ID        int64  `json:"id"`
	ClaimCode string `json:"claim_code"`
}

// LaundryResponse describes a laundry order joined with its shop and owner.
// The claim code never leaves the server.
type LaundryResponse struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"user_id"`
	ShopID          int64         `json:"shop_id"`
	Weight          float64       `json:"weight"`
	WithPickup      bool          `json:"with_pickup"`
	WithDelivery    bool          `json:"with_delivery"`
	PickupAddress   string        `json:"pickup_address"`
	DeliveryAddress string        `json:"delivery_address"`
	Total           float64       `json:"total"`
	Description     string        `json:"description"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Shop            ShopResponse  `json:"shop"`
	User            *UserResponse `json:"user"`
}
