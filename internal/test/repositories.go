package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/mirzakf/laundromart/internal/domain/errors"
	"github.com/mirzakf/laundromart/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail    map[string]*model.User
	ByUsername map[string]*model.User
	ByID       map[int64]*model.User
	Next       int64
	Err        error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail:    make(map[string]*model.User),
		ByUsername: make(map[string]*model.User),
		ByID:       make(map[int64]*model.User),
		Next:       1,
	}
}

// Create registers user unless username or email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByUsername == nil {
		s.ByUsername = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrUsernameTaken
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrEmailTaken
	}
	if s.Next == 0 {
		s.Next = 1
	}
	now := time.Now()
	user := &model.User{ID: s.Next, Username: username, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	s.Next++
	s.ByEmail[email] = user
	s.ByUsername[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns stored users ordered by identifier.
func (s *UserRepositoryStub) ListAll(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// ShopRepositoryStub serves preconfigured shop listings.
type ShopRepositoryStub struct {
	Shops []model.Shop
	Err   error
}

// ListAll returns the configured shops.
func (s *ShopRepositoryStub) ListAll(ctx context.Context) ([]model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Shops, nil
}

// TopByRate returns at most limit shops ordered by rate descending.
func (s *ShopRepositoryStub) TopByRate(ctx context.Context, limit int) ([]model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sorted := make([]model.Shop, len(s.Shops))
	copy(sorted, s.Shops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rate > sorted[j].Rate })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// PromoRepositoryStub serves preconfigured promo listings.
type PromoRepositoryStub struct {
	Promos []model.PromoDetail
	Err    error
}

// ListAll returns the configured promos.
func (s *PromoRepositoryStub) ListAll(ctx context.Context) ([]model.PromoDetail, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Promos, nil
}

// TopByCreatedAt returns at most limit promos ordered by creation time descending.
func (s *PromoRepositoryStub) TopByCreatedAt(ctx context.Context, limit int) ([]model.PromoDetail, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sorted := make([]model.PromoDetail, len(s.Promos))
	copy(sorted, s.Promos)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// LaundryRepositoryStub keeps laundries in-memory with a claim transition.
type LaundryRepositoryStub struct {
	Laundries []model.LaundryDetail
	ClaimFn   func(context.Context, int64, string, int64) (*model.LaundryDetail, error)
	Err       error
}

// ListAll returns the configured laundries.
func (s *LaundryRepositoryStub) ListAll(ctx context.Context) ([]model.LaundryDetail, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Laundries, nil
}

// ListByOwner filters configured laundries by owner.
func (s *LaundryRepositoryStub) ListByOwner(ctx context.Context, userID int64) ([]model.LaundryDetail, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	owned := make([]model.LaundryDetail, 0)
	for _, l := range s.Laundries {
		if l.UserID == userID {
			owned = append(owned, l)
		}
	}
	return owned, nil
}

// Claim performs the in-memory claim transition or delegates to the override.
func (s *LaundryRepositoryStub) Claim(ctx context.Context, laundryID int64, claimCode string, userID int64) (*model.LaundryDetail, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, laundryID, claimCode, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Laundries {
		l := &s.Laundries[i]
		if l.ID != laundryID || l.ClaimCode != claimCode {
			continue
		}
		if l.Claimed() {
			return nil, domainErrors.ErrAlreadyClaimed
		}
		l.UserID = userID
		l.UpdatedAt = time.Now()
		claimed := *l
		return &claimed, nil
	}
	return nil, domainErrors.ErrNotFound
}
