package entity

import (
	"time"

	coreEntity "slotswapper/core/entity"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusBusy        EventStatus = "BUSY"
	EventStatusSwappable   EventStatus = "SWAPPABLE"
	EventStatusSwapPending EventStatus = "SWAP_PENDING"
)

// IsUserSettable reports whether an owner may set this status directly.
// SWAP_PENDING is only ever applied by the swap engine.
func (s EventStatus) IsUserSettable() bool {
	return s == EventStatusBusy || s == EventStatusSwappable
}

type Event struct {
	UserID    uuid.UUID   `db:"user_id" json:"user_id"`
	Title     string      `db:"title" json:"title"`
	StartTime time.Time   `db:"start_time" json:"start_time"`
	EndTime   time.Time   `db:"end_time" json:"end_time"`
	Status    EventStatus `db:"status" json:"status"`
	Slug      string      `db:"slug" json:"slug"`
	coreEntity.BaseEntity
}

func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}

// IsLocked reports whether the event is frozen by an unresolved swap.
func (e *Event) IsLocked() bool {
	return e.Status == EventStatusSwapPending
}

// CanBeModified reports whether title/time updates are allowed: the event
// must not be a swap endpoint and must not have started yet.
func (e *Event) CanBeModified(now time.Time) bool {
	return !e.IsLocked() && e.StartTime.After(now)
}
