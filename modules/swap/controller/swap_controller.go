package controller

import (
	"slotswapper/core/controller"
	"slotswapper/core/errors"
	authController "slotswapper/modules/auth/controller"
	"slotswapper/modules/swap/dto"
	"slotswapper/modules/swap/entity"
	"slotswapper/modules/swap/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SwapController struct {
	controller.BaseController
	service service.SwapServiceInterface
}

func NewSwapController(service service.SwapServiceInterface) *SwapController {
	return &SwapController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// GetSwappableSlots lists other users' slots that are open for swapping
func (c *SwapController) GetSwappableSlots(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	resp, appErr := c.service.GetSwappableSlots(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Swappable slots retrieved successfully")
}

// CreateSwapRequest proposes exchanging one of the user's slots for another user's slot
func (c *SwapController) CreateSwapRequest(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	var req dto.CreateSwapRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	req.Normalize()
	if validationErrs := req.Validate(); len(validationErrs) > 0 {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid input data", validationErrs)
	}

	resp, appErr := c.service.CreateSwapRequest(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, resp, "Swap request created successfully")
}

// RespondToSwapRequest accepts or rejects a pending request addressed to the user
func (c *SwapController) RespondToSwapRequest(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	requestID, err := uuid.Parse(ctx.Param("requestId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid swap request ID", nil)
	}

	var req dto.RespondSwapRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	req.Normalize()

	action, err := entity.ParseSwapAction(req.Action)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid input data", []controller.ValidationError{
			controller.NewValidationError("action", err.Error()),
		})
	}

	resp, appErr := c.service.RespondToSwapRequest(ctx.Request().Context(), requestID, userID, action, req.ResponseMessage)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Swap response processed successfully")
}

// GetIncomingRequests lists requests targeting the user's slots, newest first
func (c *SwapController) GetIncomingRequests(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	resp, appErr := c.service.GetIncomingRequests(ctx.Request().Context(), userID, ctx.QueryParam("status"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Incoming swap requests retrieved successfully")
}

// GetOutgoingRequests lists requests the user has sent, newest first
func (c *SwapController) GetOutgoingRequests(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	resp, appErr := c.service.GetOutgoingRequests(ctx.Request().Context(), userID, ctx.QueryParam("status"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Outgoing swap requests retrieved successfully")
}
