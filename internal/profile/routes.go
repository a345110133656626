package profile

import (
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, profileService *ProfileService) {
	profileController := &ProfileController{ProfileService: profileService}

	profileGroup := r.Group("/api/profile")
	profileGroup.Use(middlewares.AuthMiddleware())
	{
		profileGroup.GET("", profileController.GetProfile)
		profileGroup.POST("", profileController.UpdateProfile)
	}
}
