package controller

import (
	"net/http"
	"time"

	"slotswapper/core/constants"
	"slotswapper/core/controller"
	"slotswapper/core/errors"
	"slotswapper/core/logger"
	"slotswapper/core/utils"
	"slotswapper/modules/auth/dto"
	"slotswapper/modules/auth/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service service.AuthServiceInterface
}

func NewAuthController(service service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// GetUserIDFromContext retrieves user ID from context
func GetUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get("token_data")
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Token data not found in context", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data format", nil)
	}

	return claims.UserID, nil
}

// Register creates a new user account
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	req.Normalize()
	if validationErrs := req.Validate(); len(validationErrs) > 0 {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid input data", validationErrs)
	}

	resp, appErr := c.service.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	setTokenCookie(ctx, resp.Token)
	return c.CreatedResponse(ctx, resp, "User registered successfully")
}

// Login authenticates a user and sets the token cookie
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	req.Normalize()
	if validationErrs := req.Validate(); len(validationErrs) > 0 {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid input data", validationErrs)
	}

	resp, appErr := c.service.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	setTokenCookie(ctx, resp.Token)
	return c.SuccessResponse(ctx, resp, "Login successful")
}

// Logout revokes the current token and clears the cookie
func (c *AuthController) Logout(ctx echo.Context) error {
	token, _ := ctx.Get("raw_token").(string)
	if appErr := c.service.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	clearTokenCookie(ctx)
	return c.SuccessResponse(ctx, nil, "Logged out successfully")
}

// GetProfile returns the current user's profile
func (c *AuthController) GetProfile(ctx echo.Context) error {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	resp, appErr := c.service.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Profile retrieved successfully")
}

// UploadAvatar stores a profile image
func (c *AuthController) UploadAvatar(ctx echo.Context) error {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Avatar file is required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("AuthController:UploadAvatar:Open", "error", err)
		return c.InternalServerError(errors.ErrInternalServer, "Failed to read avatar file", nil)
	}
	defer file.Close()

	resp, appErr := c.service.UploadAvatar(ctx.Request().Context(), userID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Avatar uploaded successfully")
}

func setTokenCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(constants.TokenTTL),
	})
}

func clearTokenCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
