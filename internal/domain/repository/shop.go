package repository

import (
	"context"

	"github.com/mirzakf/laundromart/internal/domain/model"
)

// ShopRepository describes read access to shops.
type ShopRepository interface {
	ListAll(ctx context.Context) ([]model.Shop, error)
	TopByRate(ctx context.Context, limit int) ([]model.Shop, error)
}
