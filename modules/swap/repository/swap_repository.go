package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"slotswapper/core/database"
	"slotswapper/core/logger"
	eventEntity "slotswapper/modules/event/entity"
	"slotswapper/modules/swap/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Sentinel errors surfaced from inside the swap transactions. The service
// maps these to the user-facing error kinds.
var (
	ErrSlotUnavailable  = errors.New("slot is no longer swappable")
	ErrPendingExists    = errors.New("slot already has a pending swap request")
	ErrEventMissing     = errors.New("referenced event no longer exists")
	ErrRequestMissing   = errors.New("swap request no longer exists")
	ErrAlreadyProcessed = errors.New("swap request already processed")
)

const uniqueViolation = "23505"

// SwapRepository owns the swap_requests table and the transactional slot
// exchange against the events table.
type SwapRepository struct {
	DB database.Database
}

func NewSwapRepository(db database.Database) *SwapRepository {
	return &SwapRepository{DB: db}
}

type SwapRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequestDetail, error)
	HasPendingForTargetSlot(ctx context.Context, targetSlotID uuid.UUID) (bool, error)
	HasPendingFromRequester(ctx context.Context, requesterUserID, targetSlotID uuid.UUID) (bool, error)
	CreatePendingWithSlotLock(ctx context.Context, request *entity.SwapRequest) error
	ApplyResponse(ctx context.Context, requestID uuid.UUID, action entity.SwapAction, responseMessage string) error
	ListIncoming(ctx context.Context, userID uuid.UUID, status *entity.SwapStatus) ([]entity.SwapRequestDetail, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID, status *entity.SwapStatus) ([]entity.SwapRequestDetail, error)
	FindSwappableSlots(ctx context.Context, excludeUserID uuid.UUID) ([]entity.SwappableSlot, error)
}

const detailColumns = `
	sr.id, sr.requester_user_id, sr.requester_slot_id, sr.target_user_id, sr.target_slot_id,
	sr.status, sr.message, sr.response_message, sr.responded_at, sr.created_at, sr.updated_at,
	ru.name AS requester_name, ru.email AS requester_email,
	tu.name AS target_name, tu.email AS target_email,
	rs.title AS requester_slot_title, rs.start_time AS requester_slot_start_time, rs.end_time AS requester_slot_end_time,
	ts.title AS target_slot_title, ts.start_time AS target_slot_start_time, ts.end_time AS target_slot_end_time
`

const detailJoins = `
	FROM swap_requests sr
	JOIN users ru ON ru.id = sr.requester_user_id
	JOIN users tu ON tu.id = sr.target_user_id
	JOIN events rs ON rs.id = sr.requester_slot_id
	JOIN events ts ON ts.id = sr.target_slot_id
`

func (r *SwapRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error) {
	query := `
		SELECT id, requester_user_id, requester_slot_id, target_user_id, target_slot_id,
		       status, message, response_message, responded_at, created_at, updated_at
		FROM swap_requests WHERE id = $1
	`
	var request entity.SwapRequest
	err := r.DB.GetContext(ctx, &request, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SwapRepository:GetByID", err)
		return nil, err
	}
	return &request, nil
}

func (r *SwapRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequestDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + ` WHERE sr.id = $1`

	var detail entity.SwapRequestDetail
	err := r.DB.GetContext(ctx, &detail, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SwapRepository:GetDetailByID", err)
		return nil, err
	}
	return &detail, nil
}

func (r *SwapRepository) HasPendingForTargetSlot(ctx context.Context, targetSlotID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM swap_requests WHERE target_slot_id = $1 AND status = 'PENDING')`
	if err := r.DB.GetContext(ctx, &exists, query, targetSlotID); err != nil {
		logger.Error("SwapRepository:HasPendingForTargetSlot", err)
		return false, err
	}
	return exists, nil
}

func (r *SwapRepository) HasPendingFromRequester(ctx context.Context, requesterUserID, targetSlotID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swap_requests
			WHERE requester_user_id = $1 AND target_slot_id = $2 AND status = 'PENDING'
		)
	`
	if err := r.DB.GetContext(ctx, &exists, query, requesterUserID, targetSlotID); err != nil {
		logger.Error("SwapRepository:HasPendingFromRequester", err)
		return false, err
	}
	return exists, nil
}

// CreatePendingWithSlotLock performs the atomic half of swap creation: it
// locks both events, re-verifies that each is still SWAPPABLE and that no
// other PENDING request claimed the target slot, flips both events to
// SWAP_PENDING and inserts the request. The service checks the same
// preconditions up front for precise error messages; the in-transaction
// re-check is what actually closes the race. A partial unique index on
// (target_slot_id) WHERE status = 'PENDING' backstops even that.
func (r *SwapRepository) CreatePendingWithSlotLock(ctx context.Context, request *entity.SwapRequest) error {
	return r.DB.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		first, second := orderedPair(request.RequesterSlotID, request.TargetSlotID)

		locked := map[uuid.UUID]*lockedEvent{}
		for _, id := range []uuid.UUID{first, second} {
			ev, err := lockEvent(ctx, tx, id)
			if err != nil {
				return err
			}
			locked[id] = ev
		}

		if locked[request.RequesterSlotID].Status != eventEntity.EventStatusSwappable ||
			locked[request.TargetSlotID].Status != eventEntity.EventStatusSwappable {
			return ErrSlotUnavailable
		}

		var pendingExists bool
		err := tx.GetContext(ctx, &pendingExists,
			`SELECT EXISTS (SELECT 1 FROM swap_requests WHERE target_slot_id = $1 AND status = 'PENDING')`,
			request.TargetSlotID)
		if err != nil {
			return err
		}
		if pendingExists {
			return ErrPendingExists
		}

		for _, id := range []uuid.UUID{request.RequesterSlotID, request.TargetSlotID} {
			if _, err := tx.ExecContext(ctx,
				`UPDATE events SET status = 'SWAP_PENDING', updated_at = NOW() WHERE id = $1`, id); err != nil {
				return err
			}
		}

		now := time.Now()
		request.Status = entity.SwapStatusPending
		request.CreatedAt = now
		request.UpdatedAt = now

		row := tx.QueryRowContext(ctx, `
			INSERT INTO swap_requests
				(requester_user_id, requester_slot_id, target_user_id, target_slot_id, status, message, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`,
			request.RequesterUserID, request.RequesterSlotID,
			request.TargetUserID, request.TargetSlotID,
			request.Status, request.Message, request.CreatedAt, request.UpdatedAt,
		)
		if err := row.Scan(&request.ID); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return ErrPendingExists
			}
			return err
		}
		return nil
	})
}

// ApplyResponse performs the atomic half of a response. It re-reads the
// request under lock so a second responder loses cleanly, then either
// exchanges the two events' times (accept) or reopens both slots (reject).
func (r *SwapRepository) ApplyResponse(ctx context.Context, requestID uuid.UUID, action entity.SwapAction, responseMessage string) error {
	return r.DB.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var request entity.SwapRequest
		err := tx.GetContext(ctx, &request, `
			SELECT id, requester_user_id, requester_slot_id, target_user_id, target_slot_id,
			       status, message, response_message, responded_at, created_at, updated_at
			FROM swap_requests WHERE id = $1 FOR UPDATE
		`, requestID)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrRequestMissing
			}
			return err
		}
		if !request.IsPending() {
			return ErrAlreadyProcessed
		}

		first, second := orderedPair(request.RequesterSlotID, request.TargetSlotID)

		locked := map[uuid.UUID]*lockedEvent{}
		for _, id := range []uuid.UUID{first, second} {
			ev, err := lockEvent(ctx, tx, id)
			if err != nil {
				return err
			}
			locked[id] = ev
		}

		requesterSlot := locked[request.RequesterSlotID]
		targetSlot := locked[request.TargetSlotID]

		switch action {
		case entity.SwapActionAccept:
			// Each event takes the other's original times.
			if _, err := tx.ExecContext(ctx,
				`UPDATE events SET start_time = $2, end_time = $3, status = 'BUSY', updated_at = NOW() WHERE id = $1`,
				request.RequesterSlotID, targetSlot.StartTime, targetSlot.EndTime); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE events SET start_time = $2, end_time = $3, status = 'BUSY', updated_at = NOW() WHERE id = $1`,
				request.TargetSlotID, requesterSlot.StartTime, requesterSlot.EndTime); err != nil {
				return err
			}
		case entity.SwapActionReject:
			for _, id := range []uuid.UUID{request.RequesterSlotID, request.TargetSlotID} {
				if _, err := tx.ExecContext(ctx,
					`UPDATE events SET status = 'SWAPPABLE', updated_at = NOW() WHERE id = $1`, id); err != nil {
					return err
				}
			}
		}

		status := entity.SwapStatusRejected
		if action == entity.SwapActionAccept {
			status = entity.SwapStatusAccepted
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE swap_requests
			SET status = $2, response_message = $3, responded_at = NOW(), updated_at = NOW()
			WHERE id = $1
		`, requestID, status, responseMessage); err != nil {
			return err
		}
		return nil
	})
}

func (r *SwapRepository) ListIncoming(ctx context.Context, userID uuid.UUID, status *entity.SwapStatus) ([]entity.SwapRequestDetail, error) {
	return r.listByUserColumn(ctx, "sr.target_user_id", userID, status)
}

func (r *SwapRepository) ListOutgoing(ctx context.Context, userID uuid.UUID, status *entity.SwapStatus) ([]entity.SwapRequestDetail, error) {
	return r.listByUserColumn(ctx, "sr.requester_user_id", userID, status)
}

func (r *SwapRepository) listByUserColumn(ctx context.Context, column string, userID uuid.UUID, status *entity.SwapStatus) ([]entity.SwapRequestDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + ` WHERE ` + column + ` = $1`
	args := []any{userID}

	if status != nil {
		query += ` AND sr.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY sr.created_at DESC`

	var details []entity.SwapRequestDetail
	if err := r.DB.SelectContext(ctx, &details, query, args...); err != nil {
		logger.Error("SwapRepository:List", "error", err, "column", column)
		return nil, err
	}
	return details, nil
}

func (r *SwapRepository) FindSwappableSlots(ctx context.Context, excludeUserID uuid.UUID) ([]entity.SwappableSlot, error) {
	query := `
		SELECT e.id, e.title, e.start_time, e.end_time, e.slug,
		       u.id AS owner_id, u.name AS owner_name, u.email AS owner_email,
		       e.created_at, e.updated_at
		FROM events e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id != $1 AND e.status = 'SWAPPABLE'
		ORDER BY e.start_time ASC
	`
	var slots []entity.SwappableSlot
	if err := r.DB.SelectContext(ctx, &slots, query, excludeUserID); err != nil {
		logger.Error("SwapRepository:FindSwappableSlots", err)
		return nil, err
	}
	return slots, nil
}

type lockedEvent struct {
	ID        uuid.UUID               `db:"id"`
	UserID    uuid.UUID               `db:"user_id"`
	StartTime time.Time               `db:"start_time"`
	EndTime   time.Time               `db:"end_time"`
	Status    eventEntity.EventStatus `db:"status"`
}

// lockEvent acquires a row lock on a single event. Callers lock the pair in
// UUID order so two transactions over the same pair cannot deadlock.
func lockEvent(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*lockedEvent, error) {
	var ev lockedEvent
	err := tx.GetContext(ctx, &ev,
		`SELECT id, user_id, start_time, end_time, status FROM events WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventMissing
		}
		return nil, err
	}
	return &ev, nil
}

func orderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}
