package usecase

import (
	"go.uber.org/fx"

	"github.com/mirzakf/laundromart/internal/config"
	"github.com/mirzakf/laundromart/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewLaundryUseCase,
	newCatalogUseCase,
)

type catalogParams struct {
	fx.In

	Shops  repository.ShopRepository
	Promos repository.PromoRepository
	Config *config.Config
}

func newCatalogUseCase(p catalogParams) *CatalogUseCase {
	return NewCatalogUseCase(p.Shops, p.Promos, p.Config.TopLimit)
}
