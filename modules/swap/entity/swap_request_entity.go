package entity

import (
	"fmt"
	"strings"
	"time"

	coreEntity "slotswapper/core/entity"

	"github.com/google/uuid"
)

type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "PENDING"
	SwapStatusAccepted SwapStatus = "ACCEPTED"
	SwapStatusRejected SwapStatus = "REJECTED"
)

// ParseSwapStatus validates a status filter value.
func ParseSwapStatus(s string) (SwapStatus, bool) {
	switch SwapStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case SwapStatusPending:
		return SwapStatusPending, true
	case SwapStatusAccepted:
		return SwapStatusAccepted, true
	case SwapStatusRejected:
		return SwapStatusRejected, true
	}
	return "", false
}

// SwapAction is the closed set of responses to a pending request.
type SwapAction int

const (
	SwapActionAccept SwapAction = iota
	SwapActionReject
)

func ParseSwapAction(s string) (SwapAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept":
		return SwapActionAccept, nil
	case "reject":
		return SwapActionReject, nil
	}
	return 0, fmt.Errorf("action must be either accept or reject")
}

func (a SwapAction) String() string {
	if a == SwapActionAccept {
		return "accept"
	}
	return "reject"
}

type SwapRequest struct {
	RequesterUserID uuid.UUID  `db:"requester_user_id" json:"requester_user_id"`
	RequesterSlotID uuid.UUID  `db:"requester_slot_id" json:"requester_slot_id"`
	TargetUserID    uuid.UUID  `db:"target_user_id" json:"target_user_id"`
	TargetSlotID    uuid.UUID  `db:"target_slot_id" json:"target_slot_id"`
	Status          SwapStatus `db:"status" json:"status"`
	Message         string     `db:"message" json:"message"`
	ResponseMessage string     `db:"response_message" json:"response_message"`
	RespondedAt     *time.Time `db:"responded_at" json:"responded_at"`
	coreEntity.BaseEntity
}

// IsPending reports whether the request is still open for a response.
func (r *SwapRequest) IsPending() bool {
	return r.Status == SwapStatusPending
}

// SwapRequestDetail is a request row joined with both owners and both slots.
type SwapRequestDetail struct {
	SwapRequest

	RequesterName  string `db:"requester_name"`
	RequesterEmail string `db:"requester_email"`
	TargetName     string `db:"target_name"`
	TargetEmail    string `db:"target_email"`

	RequesterSlotTitle string    `db:"requester_slot_title"`
	RequesterSlotStart time.Time `db:"requester_slot_start_time"`
	RequesterSlotEnd   time.Time `db:"requester_slot_end_time"`
	TargetSlotTitle    string    `db:"target_slot_title"`
	TargetSlotStart    time.Time `db:"target_slot_start_time"`
	TargetSlotEnd      time.Time `db:"target_slot_end_time"`
}

// SwappableSlot is a marketplace row: an event joined with its owner.
type SwappableSlot struct {
	ID         uuid.UUID `db:"id"`
	Title      string    `db:"title"`
	StartTime  time.Time `db:"start_time"`
	EndTime    time.Time `db:"end_time"`
	Slug       string    `db:"slug"`
	OwnerID    uuid.UUID `db:"owner_id"`
	OwnerName  string    `db:"owner_name"`
	OwnerEmail string    `db:"owner_email"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
