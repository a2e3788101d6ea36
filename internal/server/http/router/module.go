package router

import (
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/mirzakf/laundromart/internal/config"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	newRateLimiter,
	Setup,
)

func newRateLimiter(cfg *config.Config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
}
