package di

import (
	"github.com/mirzakf/laundromart/internal/app"
	"github.com/mirzakf/laundromart/internal/config"
	"github.com/mirzakf/laundromart/internal/logger"
	"github.com/mirzakf/laundromart/internal/pkg/auth"
	"github.com/mirzakf/laundromart/internal/server/http/handlers"
	"github.com/mirzakf/laundromart/internal/server/http/router"
	"github.com/mirzakf/laundromart/internal/storage/postgres"
	"github.com/mirzakf/laundromart/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketFacade) handlers.MarketFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.Pinger { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
