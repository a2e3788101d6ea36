package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/mirzakf/laundromart/internal/domain/errors"
	"github.com/mirzakf/laundromart/internal/domain/model"
	"github.com/mirzakf/laundromart/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage layer.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type shopRepository struct {
	storage *Storage
}

type promoRepository struct {
	storage *Storage
}

type laundryRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Shops() repository.ShopRepository {
	return &shopRepository{storage: s}
}

func (s *Storage) Promos() repository.PromoRepository {
	return &promoRepository{storage: s}
}

func (s *Storage) Laundries() repository.LaundryRepository {
	return &laundryRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS shops (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            rate DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS promos (
            id SERIAL PRIMARY KEY,
            shop_id BIGINT NOT NULL REFERENCES shops(id),
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            discount DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS laundries (
            id SERIAL PRIMARY KEY,
            claim_code TEXT NOT NULL,
            user_id BIGINT NOT NULL DEFAULT 0,
            shop_id BIGINT NOT NULL REFERENCES shops(id),
            weight DOUBLE PRECISION NOT NULL DEFAULT 0,
            with_pickup BOOLEAN NOT NULL DEFAULT FALSE,
            with_delivery BOOLEAN NOT NULL DEFAULT FALSE,
            pickup_address TEXT NOT NULL DEFAULT '',
            delivery_address TEXT NOT NULL DEFAULT '',
            total DOUBLE PRECISION NOT NULL DEFAULT 0,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_laundries_owner ON laundries(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_promos_created ON promos(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)
                   RETURNING id, created_at, updated_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username, email, passwordHash).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return nil, domainErrors.ErrUsernameTaken
			case "users_email_key":
				return nil, domainErrors.ErrEmailTaken
			}
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Username = username
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at, updated_at FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- ShopRepository implementation ---

const selectShopColumns = `id, name, address, description, rate, created_at, updated_at`

func (r *shopRepository) ListAll(ctx context.Context) ([]model.Shop, error) {
	query := `SELECT ` + selectShopColumns + ` FROM shops ORDER BY id`
	return r.queryShops(ctx, query)
}

func (r *shopRepository) TopByRate(ctx context.Context, limit int) ([]model.Shop, error) {
	query := `SELECT ` + selectShopColumns + ` FROM shops ORDER BY rate DESC, id DESC LIMIT $1`
	return r.queryShops(ctx, query, limit)
}

func (r *shopRepository) queryShops(ctx context.Context, query string, args ...any) ([]model.Shop, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Shop
	for rows.Next() {
		var s model.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Description, &s.Rate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- PromoRepository implementation ---

const selectPromoDetail = `SELECT p.id, p.shop_id, p.title, p.description, p.discount, p.created_at, p.updated_at,
                                  s.id, s.name, s.address, s.description, s.rate, s.created_at, s.updated_at
                           FROM promos p
                           JOIN shops s ON s.id = p.shop_id`

func (r *promoRepository) ListAll(ctx context.Context) ([]model.PromoDetail, error) {
	return r.queryPromos(ctx, selectPromoDetail+` ORDER BY p.id`)
}

func (r *promoRepository) TopByCreatedAt(ctx context.Context, limit int) ([]model.PromoDetail, error) {
	return r.queryPromos(ctx, selectPromoDetail+` ORDER BY p.created_at DESC, p.id DESC LIMIT $1`, limit)
}

func (r *promoRepository) queryPromos(ctx context.Context, query string, args ...any) ([]model.PromoDetail, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PromoDetail
	for rows.Next() {
		var d model.PromoDetail
		err := rows.Scan(
			&d.ID, &d.ShopID, &d.Title, &d.Description, &d.Discount, &d.CreatedAt, &d.UpdatedAt,
			&d.Shop.ID, &d.Shop.Name, &d.Shop.Address, &d.Shop.Description, &d.Shop.Rate, &d.Shop.CreatedAt, &d.Shop.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- LaundryRepository implementation ---

// Owner columns come from a LEFT JOIN: the zero user_id sentinel matches no
// user row, so unclaimed laundries scan NULL owners.
const selectLaundryDetail = `SELECT l.id, l.claim_code, l.user_id, l.shop_id, l.weight, l.with_pickup, l.with_delivery,
                                    l.pickup_address, l.delivery_address, l.total, l.description, l.status,
                                    l.created_at, l.updated_at,
                                    s.id, s.name, s.address, s.description, s.rate, s.created_at, s.updated_at,
                                    u.id, u.username, u.email, u.created_at, u.updated_at
                             FROM laundries l
                             JOIN shops s ON s.id = l.shop_id
                             LEFT JOIN users u ON u.id = l.user_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLaundryDetail(row rowScanner) (*model.LaundryDetail, error) {
	var d model.LaundryDetail
	var (
		ownerID      *int64
		ownerName    *string
		ownerEmail   *string
		ownerCreated *time.Time
		ownerUpdated *time.Time
	)
	err := row.Scan(
		&d.ID, &d.ClaimCode, &d.UserID, &d.ShopID, &d.Weight, &d.WithPickup, &d.WithDelivery,
		&d.PickupAddress, &d.DeliveryAddress, &d.Total, &d.Description, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
		&d.Shop.ID, &d.Shop.Name, &d.Shop.Address, &d.Shop.Description, &d.Shop.Rate, &d.Shop.CreatedAt, &d.Shop.UpdatedAt,
		&ownerID, &ownerName, &ownerEmail, &ownerCreated, &ownerUpdated,
	)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		d.User = &model.User{
			ID:        *ownerID,
			Username:  *ownerName,
			Email:     *ownerEmail,
			CreatedAt: *ownerCreated,
			UpdatedAt: *ownerUpdated,
		}
	}
	return &d, nil
}

func (r *laundryRepository) ListAll(ctx context.Context) ([]model.LaundryDetail, error) {
	return r.queryLaundries(ctx, selectLaundryDetail+` ORDER BY l.id`)
}

func (r *laundryRepository) ListByOwner(ctx context.Context, userID int64) ([]model.LaundryDetail, error) {
	return r.queryLaundries(ctx, selectLaundryDetail+` WHERE l.user_id=$1 ORDER BY l.created_at DESC, l.id DESC`, userID)
}

func (r *laundryRepository) queryLaundries(ctx context.Context, query string, args ...any) ([]model.LaundryDetail, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LaundryDetail
	for rows.Next() {
		d, err := scanLaundryDetail(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Claim performs the once-only ownership transition as a single conditional
// UPDATE; the compound predicate makes two concurrent claims mutually
// exclusive. A zero-row result is disambiguated by one re-read inside the
// same transaction.
func (r *laundryRepository) Claim(ctx context.Context, laundryID int64, claimCode string, userID int64) (*model.LaundryDetail, error) {
	var detail *model.LaundryDetail
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE laundries SET user_id=$3, updated_at=NOW()
                        WHERE id=$1 AND claim_code=$2 AND user_id=0`
		tag, err := tx.Exec(ctx, update, laundryID, claimCode, userID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			const probe = `SELECT user_id FROM laundries WHERE id=$1 AND claim_code=$2`
			var owner int64
			err := tx.QueryRow(ctx, probe, laundryID, claimCode).Scan(&owner)
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			if err != nil {
				return err
			}
			if owner != model.UnclaimedUserID {
				return domainErrors.ErrAlreadyClaimed
			}
			return domainErrors.ErrNotUpdated
		}

		d, err := scanLaundryDetail(tx.QueryRow(ctx, selectLaundryDetail+` WHERE l.id=$1`, laundryID))
		if err != nil {
			return err
		}
		detail = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
