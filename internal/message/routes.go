package message

import (
	"school-admin-api/internal/activity"
	"school-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, messageService *MessageService, logService *activity.LogService) {
	messageController := &MessageController{MessageService: messageService, LS: logService}

	// public contact-form intake
	r.POST("/api/messages", messageController.CreateMessage)

	messageGroup := r.Group("/api/messages")
	messageGroup.Use(middlewares.AuthMiddleware())
	{
		messageGroup.GET("", messageController.GetAllMessages)
		messageGroup.GET("/export", messageController.ExportMessages)
		messageGroup.PUT("/:id", messageController.UpdateFlags)
		messageGroup.DELETE("/:id", messageController.DeleteMessage)
	}
}
