//go:generate swag init -g main.go -d ./,../../internal/handlers,../../internal/dto -o ../docs

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_money/internal/core/ports/repositories"
	"github.com/SscSPs/currency_money/internal/core/registry"
	"github.com/SscSPs/currency_money/internal/core/services"
	"github.com/SscSPs/currency_money/internal/handlers"
	"github.com/SscSPs/currency_money/internal/middleware"
	"github.com/SscSPs/currency_money/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Currency Money API
// @version 1.0
// @description Currency registry and money arithmetic service.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	reg, err := registry.NewWithDefaults(registry.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to bootstrap currency registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeds, err := config.LoadCurrencySeeds(cfg.CurrencySeedFile)
	if err != nil {
		logger.Error("Failed to load currency seed file", slog.String("path", cfg.CurrencySeedFile), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ctx := middleware.WithLogger(context.Background(), logger)
	seeded, err := services.SeedCurrencies(ctx, reg, seeds)
	if err != nil {
		logger.Error("Failed to seed currencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Currency registry ready", slog.Int("seeded", seeded), slog.Any("namespaces", reg.Namespaces()))

	serviceContainer := services.NewServiceContainer(repositories.RepositoryProvider{
		CurrencyRegistry: reg,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	if cfg.AllowsAllOrigins() || len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
