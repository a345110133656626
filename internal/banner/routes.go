package banner

import (
	"school-admin-api/internal/activity"
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, bannerService *BannerService, logService *activity.LogService) {
	bannerController := &BannerController{BannerService: bannerService, LS: logService}

	bannerGroup := r.Group("/api/banners")
	bannerGroup.Use(middlewares.AuthMiddleware())
	{
		bannerGroup.GET("", bannerController.GetAllBanners)
		bannerGroup.POST("", bannerController.CreateBanner)
		bannerGroup.PUT("/:id", bannerController.UpdateBanner)
		bannerGroup.DELETE("/:id", bannerController.DeleteBanner)
		bannerGroup.POST("/bulk", bannerController.BulkDeleteBanners)
	}
}
