package controller

import (
	"slotswapper/core/controller"
	"slotswapper/core/errors"
	authController "slotswapper/modules/auth/controller"
	"slotswapper/modules/event/dto"
	"slotswapper/modules/event/entity"
	"slotswapper/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"time"
)

type EventController struct {
	controller.BaseController
	service service.EventServiceInterface
}

func NewEventController(service service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// CreateEvent creates a new calendar event for the current user
func (c *EventController) CreateEvent(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	req.Normalize()
	if validationErrs := req.Validate(time.Now()); len(validationErrs) > 0 {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid input data", validationErrs)
	}

	resp, appErr := c.service.CreateEvent(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, resp, "Event created successfully")
}

// GetMyEvents lists the current user's events ordered by start time
func (c *EventController) GetMyEvents(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	resp, appErr := c.service.GetMyEvents(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Events retrieved successfully")
}

// UpdateEvent updates title/times of an owned event
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	req.Normalize()
	if validationErrs := req.Validate(); len(validationErrs) > 0 {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid input data", validationErrs)
	}

	resp, appErr := c.service.UpdateEvent(ctx.Request().Context(), eventID, userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Event updated successfully")
}

// UpdateEventStatus flips an event between BUSY and SWAPPABLE
func (c *EventController) UpdateEventStatus(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	var req dto.UpdateEventStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	req.Normalize()

	resp, appErr := c.service.UpdateEventStatus(ctx.Request().Context(), eventID, userID, entity.EventStatus(req.Status))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, resp, "Event status updated successfully")
}

// DeleteEvent removes an owned event and its swap requests
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	userID, err := authController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	if appErr := c.service.DeleteEvent(ctx.Request().Context(), eventID, userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}
