package handlers

import (
	"fmt"

	"github.com/SscSPs/product_pricing_app/cmd/docs"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/SscSPs/product_pricing_app/internal/platform/config"
	"github.com/SscSPs/product_pricing_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	registerValidators()

	r.GET("/health", health)

	// Public authentication routes
	registerAuthRoutes(r, services.Auth)

	if err := setupAPIV1Routes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
	}

	v1 := r.Group("/api/v1",
		middleware.RateLimit(limiter.New(memory.NewStore(), rate)),
		middleware.AuthMiddleware(services.Auth),
		middleware.RequestPayloadMiddleware(),
		middleware.PosthogMiddleware(posthogClient),
	)

	registerCurrencyRoutes(v1, services.Currency)
	registerProductRoutes(v1, services.Product, services.ProductPrice)
	registerEventLogRoutes(v1, services.EventLog)
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
