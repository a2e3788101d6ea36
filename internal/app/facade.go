package app

import (
	"context"

	"github.com/mirzakf/laundromart/internal/domain/model"
	"github.com/mirzakf/laundromart/internal/usecase"
)

type MarketFacade struct {
	auth      *usecase.AuthUseCase
	laundries *usecase.LaundryUseCase
	catalog   *usecase.CatalogUseCase
}

func NewMarketFacade(auth *usecase.AuthUseCase, laundries *usecase.LaundryUseCase, catalog *usecase.CatalogUseCase) *MarketFacade {
	return &MarketFacade{auth: auth, laundries: laundries, catalog: catalog}
}

func (f *MarketFacade) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, email, password)
}

func (f *MarketFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MarketFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.ListUsers(ctx)
}

func (f *MarketFacade) Laundries(ctx context.Context) ([]model.LaundryDetail, error) {
	return f.laundries.ListAll(ctx)
}

func (f *MarketFacade) LaundriesByUser(ctx context.Context, userID int64) ([]model.LaundryDetail, error) {
	return f.laundries.ListByOwner(ctx, userID)
}

func (f *MarketFacade) ClaimLaundry(ctx context.Context, laundryID int64, claimCode string, userID int64) (*model.LaundryDetail, error) {
	return f.laundries.Claim(ctx, laundryID, claimCode, userID)
}

func (f *MarketFacade) Shops(ctx context.Context) ([]model.Shop, error) {
	return f.catalog.Shops(ctx)
}

func (f *MarketFacade) TopShops(ctx context.Context) ([]model.Shop, error) {
	return f.catalog.TopShops(ctx)
}

func (f *MarketFacade) Promos(ctx context.Context) ([]model.PromoDetail, error) {
	return f.catalog.Promos(ctx)
}

func (f *MarketFacade) TopPromos(ctx context.Context) ([]model.PromoDetail, error) {
	return f.catalog.TopPromos(ctx)
}
