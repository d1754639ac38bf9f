package dto

import (
	"strings"
	"time"

	"slotswapper/core/controller"
	"slotswapper/modules/swap/entity"

	"github.com/google/uuid"
)

type CreateSwapRequestDTO struct {
	RequesterSlotID uuid.UUID `json:"requester_slot_id"`
	TargetSlotID    uuid.UUID `json:"target_slot_id"`
	Message         string    `json:"message"`
}

type RespondSwapRequestDTO struct {
	Action          string `json:"action"`
	ResponseMessage string `json:"response_message"`
}

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type EventSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type SwapRequestResponse struct {
	ID              uuid.UUID         `json:"id"`
	Status          entity.SwapStatus `json:"status"`
	Message         string            `json:"message"`
	ResponseMessage string            `json:"response_message"`
	RespondedAt     *time.Time        `json:"responded_at"`
	Requester       UserSummary       `json:"requester"`
	Target          UserSummary       `json:"target"`
	RequesterSlot   EventSummary      `json:"requester_slot"`
	TargetSlot      EventSummary      `json:"target_slot"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type SwapRequestListResponse struct {
	Requests []SwapRequestResponse `json:"requests"`
	Count    int                   `json:"count"`
}

type SwappableSlotResponse struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Slug      string      `json:"slug"`
	Owner     UserSummary `json:"owner"`
}

type SwappableSlotListResponse struct {
	Slots []SwappableSlotResponse `json:"slots"`
	Count int                     `json:"count"`
}

func (r *CreateSwapRequestDTO) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
}

func (r *CreateSwapRequestDTO) Validate() []controller.ValidationError {
	var errs []controller.ValidationError

	if r.RequesterSlotID == uuid.Nil {
		errs = append(errs, controller.NewValidationError("requester_slot_id", "Invalid requester slot ID format"))
	}
	if r.TargetSlotID == uuid.Nil {
		errs = append(errs, controller.NewValidationError("target_slot_id", "Invalid target slot ID format"))
	}
	if r.RequesterSlotID != uuid.Nil && r.RequesterSlotID == r.TargetSlotID {
		errs = append(errs, controller.NewValidationError("target_slot_id", "Cannot swap with the same slot"))
	}
	return errs
}

func (r *RespondSwapRequestDTO) Normalize() {
	r.ResponseMessage = strings.TrimSpace(r.ResponseMessage)
}

func ToSwapRequestResponse(d *entity.SwapRequestDetail) SwapRequestResponse {
	return SwapRequestResponse{
		ID:              d.ID,
		Status:          d.Status,
		Message:         d.Message,
		ResponseMessage: d.ResponseMessage,
		RespondedAt:     d.RespondedAt,
		Requester: UserSummary{
			ID:    d.RequesterUserID,
			Name:  d.RequesterName,
			Email: d.RequesterEmail,
		},
		Target: UserSummary{
			ID:    d.TargetUserID,
			Name:  d.TargetName,
			Email: d.TargetEmail,
		},
		RequesterSlot: EventSummary{
			ID:        d.RequesterSlotID,
			Title:     d.RequesterSlotTitle,
			StartTime: d.RequesterSlotStart,
			EndTime:   d.RequesterSlotEnd,
		},
		TargetSlot: EventSummary{
			ID:        d.TargetSlotID,
			Title:     d.TargetSlotTitle,
			StartTime: d.TargetSlotStart,
			EndTime:   d.TargetSlotEnd,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToSwapRequestListResponse(details []entity.SwapRequestDetail) SwapRequestListResponse {
	out := make([]SwapRequestResponse, 0, len(details))
	for i := range details {
		out = append(out, ToSwapRequestResponse(&details[i]))
	}
	return SwapRequestListResponse{Requests: out, Count: len(out)}
}

func ToSwappableSlotListResponse(slots []entity.SwappableSlot) SwappableSlotListResponse {
	out := make([]SwappableSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SwappableSlotResponse{
			ID:        s.ID,
			Title:     s.Title,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Slug:      s.Slug,
			Owner: UserSummary{
				ID:    s.OwnerID,
				Name:  s.OwnerName,
				Email: s.OwnerEmail,
			},
		})
	}
	return SwappableSlotListResponse{Slots: out, Count: len(out)}
}
