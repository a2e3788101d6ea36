package handlers

import (
	"context"

	"github.com/mirzakf/laundromart/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	Users(ctx context.Context) ([]model.User, error)
}

// LaundryFacade encapsulates laundry operations exposed via HTTP.
type LaundryFacade interface {
	Laundries(ctx context.Context) ([]model.LaundryDetail, error)
	LaundriesByUser(ctx context.Context, userID int64) ([]model.LaundryDetail, error)
	ClaimLaundry(ctx context.Context, laundryID int64, claimCode string, userID int64) (*model.LaundryDetail, error)
}

// CatalogFacade provides shop and promo listings.
type CatalogFacade interface {
	Shops(ctx context.Context) ([]model.Shop, error)
	TopShops(ctx context.Context) ([]model.Shop, error)
	Promos(ctx context.Context) ([]model.PromoDetail, error)
	TopPromos(ctx context.Context) ([]model.PromoDetail, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	LaundryFacade
	CatalogFacade
}

// Pinger reports storage health.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
