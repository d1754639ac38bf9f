package router

import (
	"slotswapper/core/middleware"
	"slotswapper/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{
		controller: controller,
	}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")
	events.Use(mw.AuthMiddleware())

	events.GET("", r.controller.GetMyEvents)
	events.POST("", r.controller.CreateEvent)
	events.PUT("/:id", r.controller.UpdateEvent)
	events.PATCH("/:id/status", r.controller.UpdateEventStatus)
	events.DELETE("/:id", r.controller.DeleteEvent)
}
