package gallery

import (
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, galleryService *GalleryService) {
	galleryController := &GalleryController{GalleryService: galleryService}

	galleryGroup := r.Group("/api/gallery")
	galleryGroup.Use(middlewares.AuthMiddleware())
	{
		galleryGroup.GET("", galleryController.GetItems)
		galleryGroup.GET("/facilities", galleryController.GetFacilities)
		galleryGroup.POST("", galleryController.CreateItem)
		galleryGroup.DELETE("/:id", galleryController.DeleteItem)
	}
}
