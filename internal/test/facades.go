package test

import (
	"context"
	"time"

	"github.com/mirzakf/laundromart/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	UsersFn        func(context.Context) ([]model.User, error)
}

// Register returns the created user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	now := time.Unix(0, 0)
	return &model.User{ID: 1, Username: username, Email: email, CreatedAt: now, UpdatedAt: now}, nil
}

// Authenticate returns user and token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	now := time.Unix(0, 0)
	return &model.User{ID: 1, Username: "user", Email: email, CreatedAt: now, UpdatedAt: now}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Users returns preconfigured users.
func (s AuthFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Username: "user", Email: "user@example.com"}}, nil
}

// LaundryFacadeStub provides controllable behaviour for laundry endpoints.
type LaundryFacadeStub struct {
	LaundriesFn       func(context.Context) ([]model.LaundryDetail, error)
	LaundriesByUserFn func(context.Context, int64) ([]model.LaundryDetail, error)
	ClaimFn           func(context.Context, int64, string, int64) (*model.LaundryDetail, error)
}

// Laundries returns preconfigured laundries.
func (s LaundryFacadeStub) Laundries(ctx context.Context) ([]model.LaundryDetail, error) {
	if s.LaundriesFn != nil {
		return s.LaundriesFn(ctx)
	}
	return []model.LaundryDetail{{Laundry: model.Laundry{ID: 1}}}, nil
}

// LaundriesByUser returns preconfigured laundries for given owner.
func (s LaundryFacadeStub) LaundriesByUser(ctx context.Context, userID int64) ([]model.LaundryDetail, error) {
	if s.LaundriesByUserFn != nil {
		return s.LaundriesByUserFn(ctx, userID)
	}
	return []model.LaundryDetail{{Laundry: model.Laundry{ID: 1, UserID: userID}}}, nil
}

// ClaimLaundry delegates to override or returns a claimed laundry.
func (s LaundryFacadeStub) ClaimLaundry(ctx context.Context, laundryID int64, claimCode string, userID int64) (*model.LaundryDetail, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, laundryID, claimCode, userID)
	}
	return &model.LaundryDetail{Laundry: model.Laundry{ID: laundryID, UserID: userID, ClaimCode: claimCode}}, nil
}

// CatalogFacadeStub simulates shop and promo listings.
type CatalogFacadeStub struct {
	ShopsFn     func(context.Context) ([]model.Shop, error)
	TopShopsFn  func(context.Context) ([]model.Shop, error)
	PromosFn    func(context.Context) ([]model.PromoDetail, error)
	TopPromosFn func(context.Context) ([]model.PromoDetail, error)
}

// Shops returns preconfigured shops.
func (s CatalogFacadeStub) Shops(ctx context.Context) ([]model.Shop, error) {
	if s.ShopsFn != nil {
		return s.ShopsFn(ctx)
	}
	return []model.Shop{{ID: 1, Name: "shop"}}, nil
}

// TopShops returns preconfigured top rated shops.
func (s CatalogFacadeStub) TopShops(ctx context.Context) ([]model.Shop, error) {
	if s.TopShopsFn != nil {
		return s.TopShopsFn(ctx)
	}
	return []model.Shop{{ID: 1, Name: "shop", Rate: 5}}, nil
}

// Promos returns preconfigured promos.
func (s CatalogFacadeStub) Promos(ctx context.Context) ([]model.PromoDetail, error) {
	if s.PromosFn != nil {
		return s.PromosFn(ctx)
	}
	return []model.PromoDetail{{Promo: model.Promo{ID: 1, ShopID: 1}}}, nil
}

// TopPromos returns preconfigured newest promos.
func (s CatalogFacadeStub) TopPromos(ctx context.Context) ([]model.PromoDetail, error) {
	if s.TopPromosFn != nil {
		return s.TopPromosFn(ctx)
	}
	return []model.PromoDetail{{Promo: model.Promo{ID: 1, ShopID: 1}}}, nil
}

// MarketFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	LaundryFacadeStub
	CatalogFacadeStub
}

// PingerStub reports configurable storage health.
type PingerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s PingerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
