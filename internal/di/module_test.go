package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/mirzakf/laundromart/internal/app"
	"github.com/mirzakf/laundromart/internal/config"
	"github.com/mirzakf/laundromart/internal/domain/repository"
	"github.com/mirzakf/laundromart/internal/storage/postgres"
	"github.com/mirzakf/laundromart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Hour,
		ShutdownTimeout: time.Millisecond,
		TopLimit:        5,
		RateLimitRPS:    50,
		RateLimitBurst:  100,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	shopRepo := &test.ShopRepositoryStub{}
	promoRepo := &test.PromoRepositoryStub{}
	laundryRepo := &test.LaundryRepositoryStub{}

	var facade *app.MarketFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ShopRepository(shopRepo)),
			fx.Replace(repository.PromoRepository(promoRepo)),
			fx.Replace(repository.LaundryRepository(laundryRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected market facade instance")
	}
}
