package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/admin"
	"github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler     *adminhandlers.AdminHandler
	AuthMiddleware   *middleware.AdminAuthMiddleware
	LoginRateLimiter *middleware.RateLimiter
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	{
		// Login is the only unauthenticated admin endpoint, so it is
		// the one that gets brute-forced.
		admin.POST("/login", config.LoginRateLimiter.Limit(), config.AdminHandler.Login)

		protected := admin.Group("")
		protected.Use(config.AuthMiddleware.RequireAdmin())
		{
			protected.GET("/subscriptions", config.AdminHandler.ListSubscriptions)
			protected.GET("/actions", config.AdminHandler.ListActions)

			protected.POST("/subscriptions/:id/approve", config.AdminHandler.Approve)
			protected.POST("/subscriptions/:id/pause", config.AdminHandler.Pause)
			protected.POST("/subscriptions/:id/backup", config.AdminHandler.Backup)
			protected.POST("/subscriptions/:id/destroy", config.AdminHandler.Destroy)
		}
	}
}
