package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, logService LogServicePort) {
	authController := &AuthController{AuthService: authService, LS: logService}

	authGroup := r.Group("/api/auth")
	{
		authGroup.GET("/login", authController.Login)
		authGroup.GET("/callback", authController.Callback)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", authController.Me)
	}
}
