package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/middleware"
	"github.com/primeblocks/investment-backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	contactLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth)

	// Public function endpoints (job trigger, contact relay) with open CORS so
	// the dashboard and external schedulers can call them directly.
	registerFunctionRoutes(r, cfg, services, contactLimiter)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, service.User)
	registerTransactionRoutes(v1, service.Transaction)
	registerProfitHistoryRoutes(v1, service.Profit)
	registerDepositRoutes(v1, service.Deposit)
	registerWithdrawalRoutes(v1, service.Withdrawal)
	registerKycRoutes(v1, service.Kyc)
	registerPerformanceRoutes(v1, service.Performance)
	registerAdminRoutes(v1, service)
}

// registerFunctionRoutes exposes the scheduled-job trigger and the contact
// relay under /functions with permissive CORS.
func registerFunctionRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	contactLimiter *limiter.Limiter,
) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Authorization", "Content-Type"}

	functions := r.Group("/functions", cors.New(corsConfig))

	profitHandler := newProfitJobHandler(services.Profit, cfg.JobTriggerToken)
	functions.Any("/auto-increment-profits", profitHandler.trigger)

	contactHandler := newContactHandler(services.Contact)
	functions.POST("/send-contact-email", middleware.RateLimit(contactLimiter), contactHandler.submit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
