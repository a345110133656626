package activity

import (
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, logService *LogService) {
	logController := &LogController{LogService: logService}

	logGroup := r.Group("/api/activity")
	logGroup.Use(middlewares.AuthMiddleware())
	{
		logGroup.GET("", logController.GetLogs)
	}
}
