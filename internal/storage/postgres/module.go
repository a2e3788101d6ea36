package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/mirzakf/laundromart/internal/config"
	"github.com/mirzakf/laundromart/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.ShopRepository { return s.Shops() },
		func(s *Storage) repository.PromoRepository { return s.Promos() },
		func(s *Storage) repository.LaundryRepository { return s.Laundries() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
