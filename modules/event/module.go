package event

import (
	"slotswapper/core/database"
	"slotswapper/core/middleware"
	"slotswapper/modules/event/controller"
	"slotswapper/modules/event/repository"
	"slotswapper/modules/event/router"
	"slotswapper/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) service.EventServiceInterface {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	r := router.NewEventRouter(ctrl)

	r.Register(g, mw)

	return svc
}
