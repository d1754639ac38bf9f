package service

import (
	"context"
	"fmt"
	"time"

	"slotswapper/core/errors"
	"slotswapper/core/logger"
	"slotswapper/core/utils"
	"slotswapper/modules/event/dto"
	"slotswapper/modules/event/entity"
	"slotswapper/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventService enforces the event state machine and ownership rules.
type EventService struct {
	repo repository.EventRepositoryInterface
	now  func() time.Time
}

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetMyEvents(ctx context.Context, userID uuid.UUID) (*dto.EventListResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	UpdateEventStatus(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, status entity.EventStatus) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) *errors.AppError
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{
		repo: repo,
		now:  time.Now,
	}
}

// CreateEvent creates a calendar event. Status defaults to BUSY; only BUSY
// and SWAPPABLE are accepted from the owner.
func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	status := entity.EventStatusBusy
	if req.Status != "" {
		status = entity.EventStatus(req.Status)
		if !status.IsUserSettable() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Status must be either BUSY or SWAPPABLE", nil)
		}
	}

	event := &entity.Event{
		UserID:    userID,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
		Slug:      fmt.Sprintf("%s-%s", slug.Make(req.Title), utils.GenerateID()),
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	resp := dto.ToEventResponse(created)
	return &resp, nil
}

func (s *EventService) GetMyEvents(ctx context.Context, userID uuid.UUID) (*dto.EventListResponse, *errors.AppError) {
	events, err := s.repo.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	resp := dto.ToEventListResponse(events)
	return &resp, nil
}

// UpdateEvent applies title/time changes. Events that are a swap endpoint or
// already started are frozen.
func (s *EventService) UpdateEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.getOwnedEvent(ctx, eventID, userID, "You can only update your own events")
	if appErr != nil {
		return nil, appErr
	}

	if !event.CanBeModified(s.now()) {
		return nil, errors.NewAppError(errors.ErrLocked,
			"Event cannot be modified (has pending swap requests or is in the past)", nil)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}

	if !event.StartTime.After(s.now()) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Start time must be in the future", nil)
	}
	if !event.EndTime.After(event.StartTime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End time must be after start time", nil)
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	resp := dto.ToEventResponse(event)
	return &resp, nil
}

// UpdateEventStatus flips an event between BUSY and SWAPPABLE. SWAP_PENDING
// is never accepted here, and a SWAP_PENDING event cannot be flipped at all.
func (s *EventService) UpdateEventStatus(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, status entity.EventStatus) (*dto.EventResponse, *errors.AppError) {
	if !status.IsUserSettable() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Status must be either BUSY or SWAPPABLE", nil)
	}

	event, appErr := s.getOwnedEvent(ctx, eventID, userID, "You can only modify your own events")
	if appErr != nil {
		return nil, appErr
	}

	if event.IsLocked() {
		return nil, errors.NewAppError(errors.ErrLocked,
			"Cannot change status of events with pending swap requests", nil)
	}

	if err := s.repo.UpdateEventStatus(ctx, eventID, status); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event status", err)
	}

	event.Status = status
	resp := dto.ToEventResponse(event)
	return &resp, nil
}

// DeleteEvent removes the event together with any swap requests referencing it.
func (s *EventService) DeleteEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) *errors.AppError {
	_, appErr := s.getOwnedEvent(ctx, eventID, userID, "You can only delete your own events")
	if appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteEventWithRequests(ctx, eventID); err != nil {
		logger.Error("EventService:DeleteEvent", "error", err, "event_id", eventID)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	return nil
}

func (s *EventService) getOwnedEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, forbiddenMsg string) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if !event.IsOwnedBy(userID) {
		return nil, errors.NewAppError(errors.ErrForbidden, forbiddenMsg, nil)
	}
	return event, nil
}
