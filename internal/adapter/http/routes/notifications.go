package routes

import (
	"hpp_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNotifications = "/notifications"

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications, h.BasicAuth())
	{
		notifications.POST("", h.Receive)
		notifications.POST("/process", h.ProcessUnhandled)
		notifications.GET("/:id", h.GetNotification)
	}
}
