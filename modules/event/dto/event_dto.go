package dto

import (
	"strings"
	"time"

	"slotswapper/core/controller"
	"slotswapper/modules/event/entity"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type UpdateEventRequest struct {
	Title     *string    `json:"title"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

type EventResponse struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Title     string             `json:"title"`
	StartTime time.Time          `json:"start_time"`
	EndTime   time.Time          `json:"end_time"`
	Status    entity.EventStatus `json:"status"`
	Slug      string             `json:"slug"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

func (r *CreateEventRequest) Validate(now time.Time) []controller.ValidationError {
	var errs []controller.ValidationError

	if len(r.Title) < 1 || len(r.Title) > 100 {
		errs = append(errs, controller.NewValidationError("title", "Title must be between 1 and 100 characters"))
	}
	if !r.StartTime.After(now) {
		errs = append(errs, controller.NewValidationError("start_time", "Start time must be in the future"))
	}
	if !r.EndTime.After(r.StartTime) {
		errs = append(errs, controller.NewValidationError("end_time", "End time must be after start time"))
	}
	if r.Status != "" && !entity.EventStatus(r.Status).IsUserSettable() {
		errs = append(errs, controller.NewValidationError("status", "Status must be either BUSY or SWAPPABLE"))
	}
	return errs
}

func (r *UpdateEventRequest) Normalize() {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		r.Title = &trimmed
	}
}

func (r *UpdateEventRequest) Validate() []controller.ValidationError {
	var errs []controller.ValidationError

	if r.Title != nil && (len(*r.Title) < 1 || len(*r.Title) > 100) {
		errs = append(errs, controller.NewValidationError("title", "Title must be between 1 and 100 characters"))
	}
	return errs
}

func (r *UpdateEventStatusRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

func ToEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Status:    e.Status,
		Slug:      e.Slug,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToEventListResponse(events []entity.Event) EventListResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, ToEventResponse(&events[i]))
	}
	return EventListResponse{Events: out, Count: len(out)}
}
