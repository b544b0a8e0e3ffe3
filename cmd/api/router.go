package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crowdfund-backoffice/internal/shared/middleware"
	"crowdfund-backoffice/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))

		setupCampaignRoutes(authed, c)
		setupDashboardRoutes(authed, c)
	}

	return router
}

// ========================================
// CAMPAIGN ROUTES
// ========================================
func setupCampaignRoutes(rg *gin.RouterGroup, c *container.Container) {
	c.CampaignHandler.RegisterRoutes(rg.Group("/campaigns"))
}

// ========================================
// DASHBOARD ROUTES
// ========================================
// /dashboard/{summary,info,socials}: creator sửa draft, admin review
func setupDashboardRoutes(rg *gin.RouterGroup, c *container.Container) {
	dashboard := rg.Group("/dashboard")
	admin := middleware.AdminMiddleware()

	c.SummaryHandler.RegisterRoutes(dashboard.Group("/summary"), admin)
	c.InfoHandler.RegisterRoutes(dashboard.Group("/info"), admin)
	c.SocialsHandler.RegisterRoutes(dashboard.Group("/socials"), admin)
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := appCtx.HealthCheck(ctx)

		status, code := "ok", http.StatusOK
		if services["database"] != "ok" {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
