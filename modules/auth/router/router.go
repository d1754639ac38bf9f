package router

import (
	"bytes"
	"encoding/json"
	"io"

	"slotswapper/core/constants"
	"slotswapper/core/middleware"
	"slotswapper/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		controller: controller,
	}
}

func (r *AuthRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := g.Group("/auth")

	loginRateLimit := mw.RateLimitMiddleware(
		constants.AuthRateLimitMax,
		constants.AuthRateLimitWindow,
		loginRateLimitKey,
	)

	auth.POST("/register", r.controller.Register)
	auth.POST("/login", r.controller.Login, loginRateLimit)
	auth.POST("/logout", r.controller.Logout, mw.AuthMiddleware())
	auth.GET("/profile", r.controller.GetProfile, mw.AuthMiddleware())
	auth.POST("/profile/avatar", r.controller.UploadAvatar, mw.AuthMiddleware())
}

// loginRateLimitKey keys the limiter by the submitted email, falling back to
// the client IP when the body carries none. The body is restored so the
// handler can still bind it.
func loginRateLimitKey(c echo.Context) string {
	bodyBytes, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return "login:" + c.RealIP()
	}
	c.Request().Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(bodyBytes, &body); err == nil && body.Email != "" {
		return "login:" + body.Email
	}
	return "login:" + c.RealIP()
}
