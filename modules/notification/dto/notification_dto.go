package dto

import (
	"encoding/json"
	"time"

	coreEntity "slotswapper/core/entity"
	"slotswapper/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Type      entity.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Data      json.RawMessage         `json:"data"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      json.RawMessage(n.Data),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToNotificationPage(page *coreEntity.Pagination[entity.Notification]) *coreEntity.Pagination[NotificationResponse] {
	items := make([]NotificationResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, ToNotificationResponse(&page.Items[i]))
	}
	return &coreEntity.Pagination[NotificationResponse]{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
