package news

import (
	"school-admin-api/internal/activity"
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, newsService *NewsService, logService *activity.LogService) {
	newsController := &NewsController{NewsService: newsService, LS: logService}

	newsGroup := r.Group("/api/news")
	newsGroup.Use(middlewares.AuthMiddleware())
	{
		newsGroup.GET("", newsController.GetAllNews)
		newsGroup.POST("", newsController.CreateNews)
		newsGroup.GET("/:id", newsController.GetNews)
		newsGroup.PUT("/:id", newsController.UpdateNews)
		newsGroup.DELETE("/:id", newsController.DeleteNews)
	}
}
