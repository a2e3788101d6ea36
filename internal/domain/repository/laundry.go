package repository

import (
	"context"

	"github.com/mirzakf/laundromart/internal/domain/model"
)

// LaundryRepository describes persistence operations with laundry orders.
type LaundryRepository interface {
	ListAll(ctx context.Context) ([]model.LaundryDetail, error)
	ListByOwner(ctx context.Context, userID int64) ([]model.LaundryDetail, error)
	// Claim assigns ownership of the laundry matching (id, claimCode) to
	// userID. The transition happens at most once per laundry.
	Claim(ctx context.Context, laundryID int64, claimCode string, userID int64) (*model.LaundryDetail, error)
}
