package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mirzakf/laundromart/internal/server/http/handlers"
	"github.com/mirzakf/laundromart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, pinger handlers.Pinger, limiter *rate.Limiter, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RateLimit(limiter))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	laundryHandler := handlers.NewLaundryHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	healthHandler := handlers.NewHealthHandler(pinger)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/users", userHandler.List)
	api.GET("/health", healthHandler.Check)

	api.GET("/shops", catalogHandler.Shops)
	api.GET("/shops/top", catalogHandler.TopShops)
	api.GET("/promos", catalogHandler.Promos)
	api.GET("/promos/top", catalogHandler.TopPromos)

	laundries := api.Group("/laundries")
	laundries.GET("", laundryHandler.List)
	laundries.GET("/user/:id", laundryHandler.ListByUser)

	claim := laundries.Group("")
	claim.Use(middleware.AuthRequired(facade))
	claim.POST("/claim", laundryHandler.Claim)

	return engine
}
