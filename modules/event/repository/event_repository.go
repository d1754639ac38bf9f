package repository

import (
	"context"
	"database/sql"

	"slotswapper/core/database"
	"slotswapper/core/logger"
	"slotswapper/modules/event/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// EventRepository handles event persistence.
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract.
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	UpdateEventStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error
	DeleteEventWithRequests(ctx context.Context, id uuid.UUID) error
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (user_id, title, start_time, end_time, status, slug)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, title, start_time, end_time, status, slug, created_at, updated_at
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.UserID, event.Title, event.StartTime, event.EndTime, event.Status, event.Slug)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, user_id, title, start_time, end_time, status, slug, created_at, updated_at
		FROM events WHERE id = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetEventsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, user_id, title, start_time, end_time, status, slug, created_at, updated_at
		FROM events
		WHERE user_id = $1
		ORDER BY start_time ASC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, userID)
	if err != nil {
		logger.Error("EventRepository:GetEventsByUserID", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, start_time = $3, end_time = $4, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query, event.ID, event.Title, event.StartTime, event.EndTime)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", err)
		return err
	}
	return nil
}

func (r *EventRepository) UpdateEventStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("EventRepository:UpdateEventStatus", err)
		return err
	}
	return nil
}

// DeleteEventWithRequests removes the event and every swap request that
// references it as either endpoint, in one transaction so no dangling
// request can observe a deleted event.
func (r *EventRepository) DeleteEventWithRequests(ctx context.Context, id uuid.UUID) error {
	err := r.DB.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM swap_requests WHERE requester_slot_id = $1 OR target_slot_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error("EventRepository:DeleteEventWithRequests", err)
		return err
	}
	return nil
}
