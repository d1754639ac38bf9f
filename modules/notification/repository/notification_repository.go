package repository

import (
	"context"
	"database/sql"

	"slotswapper/core/database"
	coreEntity "slotswapper/core/entity"
	"slotswapper/core/logger"
	"slotswapper/core/params"
	"slotswapper/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByUserID(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*coreEntity.Pagination[entity.Notification], error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) (bool, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	DB database.Database
}

func NewNotificationRepository(db database.Database) NotificationRepositoryInterface {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.DB.GetContext(ctx, notification, query,
		notification.UserID,
		notification.Type,
		notification.Title,
		notification.Message,
		notification.Data,
	)
	if err != nil {
		logger.Error("NotificationRepo:Create", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*coreEntity.Pagination[entity.Notification], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`
	if err := r.DB.GetContext(ctx, &total, countQuery, userID); err != nil {
		logger.Error("NotificationRepo:GetByUserID:Count", err)
		return nil, err
	}

	items := []entity.Notification{}
	query := `
		SELECT id, user_id, type, title, message, data, is_read, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	offset := (p.PageNumber - 1) * p.PageSize
	if err := r.DB.SelectContext(ctx, &items, query, userID, p.PageSize, offset); err != nil {
		logger.Error("NotificationRepo:GetByUserID", err)
		return nil, err
	}

	return &coreEntity.Pagination[entity.Notification]{
		Items:      items,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`
	if err := r.DB.GetContext(ctx, &count, query, userID); err != nil {
		logger.Error("NotificationRepo:CountUnread", err)
		return 0, err
	}
	return count, nil
}

// MarkAsRead reports false when the notification does not exist or belongs to
// another user. Marking an already-read notification succeeds.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id`

	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, query, notificationID, userID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		logger.Error("NotificationRepo:MarkAsRead", err)
		return false, err
	}
	return true, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		WITH updated AS (
			UPDATE notifications
			SET is_read = TRUE, updated_at = NOW()
			WHERE user_id = $1 AND is_read = FALSE
			RETURNING 1
		)
		SELECT COUNT(*) FROM updated`

	var count int64
	if err := r.DB.GetContext(ctx, &count, query, userID); err != nil {
		logger.Error("NotificationRepo:MarkAllAsRead", err)
		return 0, err
	}
	return count, nil
}
