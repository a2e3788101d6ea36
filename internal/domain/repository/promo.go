package repository

import (
	"context"

	"github.com/mirzakf/laundromart/internal/domain/model"
)

// PromoRepository describes read access to promos joined with their shop.
type PromoRepository interface {
	ListAll(ctx context.Context) ([]model.PromoDetail, error)
	TopByCreatedAt(ctx context.Context, limit int) ([]model.PromoDetail, error)
}
