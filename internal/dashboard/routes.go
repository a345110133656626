package dashboard

import (
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, dashboardService *DashboardService) {
	dashboardController := &DashboardController{DashboardService: dashboardService}

	dashboardGroup := r.Group("/api/dashboard")
	dashboardGroup.Use(middlewares.AuthMiddleware())
	{
		dashboardGroup.GET("", dashboardController.GetCounts)
	}
}
