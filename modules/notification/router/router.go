package router

import (
	"slotswapper/core/middleware"
	"slotswapper/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	controller *controller.NotificationController
}

func NewNotificationRouter(controller *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		controller: controller,
	}
}

func (r *NotificationRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	notifications := g.Group("/notifications")
	notifications.Use(mw.AuthMiddleware())

	notifications.GET("", r.controller.GetNotifications)
	notifications.GET("/count", r.controller.GetUnreadCount)
	notifications.POST("/:id/read", r.controller.MarkAsRead)
	notifications.POST("/read-all", r.controller.MarkAllAsRead)
}
