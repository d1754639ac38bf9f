package router

import (
	"slotswapper/core/middleware"
	"slotswapper/modules/swap/controller"

	"github.com/labstack/echo/v4"
)

type SwapRouter struct {
	controller *controller.SwapController
}

func NewSwapRouter(controller *controller.SwapController) *SwapRouter {
	return &SwapRouter{
		controller: controller,
	}
}

func (r *SwapRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := mw.AuthMiddleware()

	g.GET("/swappable-slots", r.controller.GetSwappableSlots, auth)
	g.POST("/swap-request", r.controller.CreateSwapRequest, auth)
	g.POST("/swap-response/:requestId", r.controller.RespondToSwapRequest, auth)
	g.GET("/swap-requests/incoming", r.controller.GetIncomingRequests, auth)
	g.GET("/swap-requests/outgoing", r.controller.GetOutgoingRequests, auth)
}
