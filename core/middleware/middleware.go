package middleware

import (
	"net/http"
	"strings"
	"time"

	"slotswapper/core/cache"
	"slotswapper/core/constants"
	"slotswapper/core/controller"
	"slotswapper/core/errors"
	"slotswapper/core/logger"
	"slotswapper/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware authenticates the request from the token cookie or the
// Authorization header and stores the parsed claims under "token_data".
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "Access token is required")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:Auth:BlacklistCheck", "error", err)
				} else if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized,
						errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "Invalid or expired token")
			}

			c.Set("token_data", claims)
			c.Set("raw_token", token)
			return next(c)
		}
	}
}

// RateLimitMiddleware limits requests per identity per window. The key
// function decides the identity; it usually prefers a request field (the
// login email) and falls back to the client IP.
func (m *Middleware) RateLimitMiddleware(max int64, window time.Duration, keyFn func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.cache == nil {
				return next(c)
			}

			key := keyFn(c)
			count, err := m.cache.IncrementRateLimit(c.Request().Context(), key, window)
			if err != nil {
				// Counter store errors fail open.
				logger.Error("Middleware:RateLimit:Increment", "error", err)
				return next(c)
			}

			if count > max {
				return controller.NewErrorResponse(http.StatusTooManyRequests,
					errors.ErrRateLimitExceeded,
					"Too many authentication attempts. Please try again later.")
			}
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(constants.TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
