package entity

import (
	coreEntity "slotswapper/core/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type NotificationType string

const (
	NotificationTypeSwapRequested NotificationType = "SWAP_REQUESTED"
	NotificationTypeSwapAccepted  NotificationType = "SWAP_ACCEPTED"
	NotificationTypeSwapRejected  NotificationType = "SWAP_REJECTED"
)

// Notification is an in-app message for a user. Data carries a JSON payload
// whose shape depends on Type, such as the swap request ID.
type Notification struct {
	UserID  uuid.UUID        `db:"user_id" json:"user_id"`
	Type    NotificationType `db:"type" json:"type"`
	Title   string           `db:"title" json:"title"`
	Message string           `db:"message" json:"message"`
	Data    types.JSONText   `db:"data" json:"data"`
	IsRead  bool             `db:"is_read" json:"is_read"`
	coreEntity.BaseEntity
}
