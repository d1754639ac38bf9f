package auth

import (
	"slotswapper/core/cache"
	"slotswapper/core/database"
	"slotswapper/core/middleware"
	"slotswapper/core/storage"
	"slotswapper/modules/auth/controller"
	"slotswapper/modules/auth/repository"
	"slotswapper/modules/auth/router"
	"slotswapper/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and returns the service for use by other modules.
func Init(g *echo.Group, db database.Database, cache cache.Cache, store storage.Storage, mw *middleware.Middleware) service.AuthServiceInterface {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, cache, store)
	ctrl := controller.NewAuthController(svc)
	r := router.NewAuthRouter(ctrl)

	r.Register(g, mw)

	return svc
}
