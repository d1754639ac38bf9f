package notification

import (
	"slotswapper/core/database"
	"slotswapper/core/middleware"
	authRepo "slotswapper/modules/auth/repository"
	"slotswapper/modules/notification/controller"
	"slotswapper/modules/notification/repository"
	"slotswapper/modules/notification/router"
	"slotswapper/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module. The mailer may be nil when the queue
// is disabled.
func Init(g *echo.Group, db database.Database, mailer service.Mailer, mw *middleware.Middleware) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	users := authRepo.NewAuthRepository(db)
	svc := service.NewNotificationService(repo, users, mailer)
	ctrl := controller.NewNotificationController(svc)
	r := router.NewNotificationRouter(ctrl)

	r.Register(g, mw)

	return svc
}
