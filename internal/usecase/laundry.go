package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/mirzakf/laundromart/internal/domain/errors"
	"github.com/mirzakf/laundromart/internal/domain/model"
	"github.com/mirzakf/laundromart/internal/domain/repository"
)

// LaundryUseCase encapsulates laundry order reads and the claim transition.
type LaundryUseCase struct {
	laundries repository.LaundryRepository
}

// NewLaundryUseCase constructs LaundryUseCase.
func NewLaundryUseCase(laundries repository.LaundryRepository) *LaundryUseCase {
	return &LaundryUseCase{laundries: laundries}
}

// ListAll returns every laundry joined with shop and owner.
func (u *LaundryUseCase) ListAll(ctx context.Context) ([]model.LaundryDetail, error) {
	return u.laundries.ListAll(ctx)
}

// ListByOwner returns the owner's laundries, most recent first.
func (u *LaundryUseCase) ListByOwner(ctx context.Context, userID int64) ([]model.LaundryDetail, error) {
	return u.laundries.ListByOwner(ctx, userID)
}

// Claim assigns the laundry matching (id, claim code) to the user. A laundry
// that was already claimed stays with its current owner.
func (u *LaundryUseCase) Claim(ctx context.Context, laundryID int64, claimCode string, userID int64) (*model.LaundryDetail, error) {
	claimCode = strings.TrimSpace(claimCode)
	if laundryID <= 0 || claimCode == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.laundries.Claim(ctx, laundryID, claimCode, userID)
}
