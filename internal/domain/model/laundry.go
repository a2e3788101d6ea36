package model

import "time"

// UnclaimedUserID marks a laundry order without an owner.
const UnclaimedUserID int64 = 0

// Laundry describes a dropped-off order waiting to be claimed by its owner
// via the claim code printed on the receipt.
type Laundry struct {
	ID              int64
	ClaimCode       string
	UserID          int64
	ShopID          int64
	Weight          float64
	WithPickup      bool
	WithDelivery    bool
	PickupAddress   string
	DeliveryAddress string
	Total           float64
	Description     string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Claimed reports whether the laundry already has an owner.
func (l Laundry) Claimed() bool {
	return l.UserID != UnclaimedUserID
}

// LaundryDetail couples a laundry with its shop and, once claimed, its owner.
type LaundryDetail struct {
	Laundry
	Shop Shop
	User *User
}
