package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/newstepsproject/backend/cmd/docs"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/middleware"
	"github.com/newstepsproject/backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.AuthSvc)
	setupPublicRoutes(r, services)
	setupAdminRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicRoutes configures the unauthenticated surface: the four intake
// forms, inventory browsing, and the status lookup. Form posts share one
// per-IP rate limit.
func setupPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	public := r.Group("/api/v1")

	forms := public.Group("", middleware.PublicFormRateLimit("10-M"))
	registerPublicDonationRoutes(forms, services.DonationSvc)
	registerPublicMoneyDonationRoutes(forms, services.MoneyDonationSvc)
	registerPublicRequestRoutes(forms, services.RequestSvc)
	registerPublicVolunteerRoutes(forms, services.VolunteerSvc)

	registerPublicShoeRoutes(public, services.ShoeSvc)
	registerPublicLookupRoutes(public, services.LookupSvc)
}

// setupAdminRoutes configures the JWT-protected dashboard surface.
func setupAdminRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	admin := r.Group("/api/v1/admin", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAdminDonationRoutes(admin, services.DonationSvc)
	registerAdminMoneyDonationRoutes(admin, services.MoneyDonationSvc)
	registerAdminRequestRoutes(admin, services.RequestSvc, services.OrderSvc)
	registerAdminOrderRoutes(admin, services.OrderSvc)
	registerAdminShoeRoutes(admin, services.ShoeSvc)
	registerAdminVolunteerRoutes(admin, services.VolunteerSvc)
	registerAdminUserRoutes(admin, services.UserSvc)
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
