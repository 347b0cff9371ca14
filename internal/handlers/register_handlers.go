package handlers

import (
	"context"

	"github.com/SscSPs/shopbooks/cmd/docs"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/SscSPs/shopbooks/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	ping func(ctx context.Context) error,
	loginLimiter *limiter.Limiter,
) {
	health := &healthHandler{ping: ping}
	r.GET("/health", health.getHealth)

	// Public authentication routes
	public := r.Group("/api/v1")
	RegisterAuthRoutes(public, services.User, services.Token, loginLimiter)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterUserRoutes(v1, services.User)
	RegisterTransactionRoutes(v1, services.Transaction)
	RegisterChequeRoutes(v1, services.Cheque)
	RegisterReportingRoutes(v1, services.Reporting)
	RegisterImportRoutes(v1, services.Import)
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
