package handlers

import (
	"log/slog"

	"github.com/SscSPs/currency_money/cmd/docs"
	portssvc "github.com/SscSPs/currency_money/internal/core/ports/services"
	"github.com/SscSPs/currency_money/internal/middleware"
	"github.com/SscSPs/currency_money/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	RegisterValidators()

	// Add health check route
	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		slog.Error("Invalid rate limit configuration", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		return err
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))

	// Registry mutations require a bearer token
	protected := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	RegisterCurrencyRoutes(v1, protected, service.Currency)
	RegisterMoneyRoutes(v1, service.Money)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
