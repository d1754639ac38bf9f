package swap

import (
	"slotswapper/core/database"
	"slotswapper/core/middleware"
	eventRepo "slotswapper/modules/event/repository"
	"slotswapper/modules/swap/controller"
	"slotswapper/modules/swap/repository"
	"slotswapper/modules/swap/router"
	"slotswapper/modules/swap/service"

	"github.com/labstack/echo/v4"
)

// Init wires the swap module. The notifier may be nil when the
// notification worker is disabled.
func Init(g *echo.Group, db database.Database, notifier service.Notifier, mw *middleware.Middleware) service.SwapServiceInterface {
	repo := repository.NewSwapRepository(db)
	events := eventRepo.NewEventRepository(db)
	svc := service.NewSwapService(repo, events, notifier)
	ctrl := controller.NewSwapController(svc)
	r := router.NewSwapRouter(ctrl)

	r.Register(g, mw)

	return svc
}
