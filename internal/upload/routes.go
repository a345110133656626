package upload

import (
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, uploadService *UploadService) {
	uploadController := &UploadController{UploadService: uploadService}

	uploadGroup := r.Group("/api/upload")
	uploadGroup.Use(middlewares.AuthMiddleware())
	{
		uploadGroup.POST("", uploadController.SignUpload)
	}
}
