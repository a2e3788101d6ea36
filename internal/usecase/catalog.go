package usecase

import (
	"context"

	"github.com/mirzakf/laundromart/internal/domain/model"
	"github.com/mirzakf/laundromart/internal/domain/repository"
)

const defaultTopLimit = 5

// CatalogUseCase serves shop and promo listings.
type CatalogUseCase struct {
	shops    repository.ShopRepository
	promos   repository.PromoRepository
	topLimit int
}

// NewCatalogUseCase constructs CatalogUseCase with the row limit used by
// top-N listings.
func NewCatalogUseCase(shops repository.ShopRepository, promos repository.PromoRepository, topLimit int) *CatalogUseCase {
	if topLimit <= 0 {
		topLimit = defaultTopLimit
	}
	return &CatalogUseCase{shops: shops, promos: promos, topLimit: topLimit}
}

// Shops returns every shop.
func (u *CatalogUseCase) Shops(ctx context.Context) ([]model.Shop, error) {
	return u.shops.ListAll(ctx)
}

// TopShops returns the best rated shops, highest rate first.
func (u *CatalogUseCase) TopShops(ctx context.Context) ([]model.Shop, error) {
	return u.shops.TopByRate(ctx, u.topLimit)
}

// Promos returns every promo joined with its shop.
func (u *CatalogUseCase) Promos(ctx context.Context) ([]model.PromoDetail, error) {
	return u.promos.ListAll(ctx)
}

// TopPromos returns the newest promos, most recent first.
func (u *CatalogUseCase) TopPromos(ctx context.Context) ([]model.PromoDetail, error) {
	return u.promos.TopByCreatedAt(ctx, u.topLimit)
}
