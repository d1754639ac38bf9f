package service

import (
	"context"
	"errors"

	appErrors "slotswapper/core/errors"
	"slotswapper/core/logger"
	eventEntity "slotswapper/modules/event/entity"
	eventRepo "slotswapper/modules/event/repository"
	"slotswapper/modules/swap/dto"
	"slotswapper/modules/swap/entity"
	"slotswapper/modules/swap/repository"

	"github.com/google/uuid"
)

// Notifier receives best-effort notifications about swap activity. Failures
// are logged and never fail the swap operation itself.
type Notifier interface {
	NotifySwapRequested(ctx context.Context, targetUserID uuid.UUID, requesterName, slotTitle string, requestID uuid.UUID)
	NotifySwapResponded(ctx context.Context, requesterUserID uuid.UUID, responderName, slotTitle string, accepted bool, requestID uuid.UUID)
}

// SwapService mediates the full lifecycle of a swap proposal: the ordered
// precondition checks, the atomic slot exchange, and the listings.
type SwapService struct {
	repo      repository.SwapRepositoryInterface
	eventRepo eventRepo.EventRepositoryInterface
	notifier  Notifier
}

type SwapServiceInterface interface {
	GetSwappableSlots(ctx context.Context, userID uuid.UUID) (*dto.SwappableSlotListResponse, *appErrors.AppError)
	CreateSwapRequest(ctx context.Context, requesterUserID uuid.UUID, req *dto.CreateSwapRequestDTO) (*dto.SwapRequestResponse, *appErrors.AppError)
	RespondToSwapRequest(ctx context.Context, requestID uuid.UUID, userID uuid.UUID, action entity.SwapAction, responseMessage string) (*dto.SwapRequestResponse, *appErrors.AppError)
	GetIncomingRequests(ctx context.Context, userID uuid.UUID, statusFilter string) (*dto.SwapRequestListResponse, *appErrors.AppError)
	GetOutgoingRequests(ctx context.Context, userID uuid.UUID, statusFilter string) (*dto.SwapRequestListResponse, *appErrors.AppError)
}

func NewSwapService(repo repository.SwapRepositoryInterface, eventRepo eventRepo.EventRepositoryInterface, notifier Notifier) SwapServiceInterface {
	return &SwapService{
		repo:      repo,
		eventRepo: eventRepo,
		notifier:  notifier,
	}
}

// GetSwappableSlots returns the marketplace: every SWAPPABLE event not owned
// by the viewer, ordered by start time.
func (s *SwapService) GetSwappableSlots(ctx context.Context, userID uuid.UUID) (*dto.SwappableSlotListResponse, *appErrors.AppError) {
	slots, err := s.repo.FindSwappableSlots(ctx, userID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to fetch marketplace slots", err)
	}

	resp := dto.ToSwappableSlotListResponse(slots)
	return &resp, nil
}

// CreateSwapRequest checks the preconditions in a fixed order so each failure
// surfaces as a distinct error kind, then delegates the all-or-nothing effect
// to the repository transaction, which re-verifies the racy ones under lock.
func (s *SwapService) CreateSwapRequest(ctx context.Context, requesterUserID uuid.UUID, req *dto.CreateSwapRequestDTO) (*dto.SwapRequestResponse, *appErrors.AppError) {
	targetSlot, err := s.eventRepo.GetEventByID(ctx, req.TargetSlotID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to create swap request", err)
	}
	if targetSlot == nil {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "Target slot not found", nil)
	}

	if targetSlot.UserID == requesterUserID {
		return nil, appErrors.NewAppError(appErrors.ErrConflict, "You cannot swap with your own slots", nil)
	}

	requesterSlot, err := s.eventRepo.GetEventByID(ctx, req.RequesterSlotID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to create swap request", err)
	}
	if requesterSlot == nil || !requesterSlot.IsOwnedBy(requesterUserID) {
		return nil, appErrors.NewAppError(appErrors.ErrForbidden, "You can only offer your own slots for swapping", nil)
	}

	if requesterSlot.Status != eventEntity.EventStatusSwappable {
		return nil, appErrors.NewAppError(appErrors.ErrConflict, "Your slot must be marked as swappable to create a swap request", nil)
	}
	if targetSlot.Status != eventEntity.EventStatusSwappable {
		return nil, appErrors.NewAppError(appErrors.ErrConflict, "Target slot is not available for swapping", nil)
	}

	pendingExists, err := s.repo.HasPendingForTargetSlot(ctx, req.TargetSlotID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to create swap request", err)
	}
	if pendingExists {
		return nil, appErrors.NewAppError(appErrors.ErrConflict, "This slot already has a pending swap request", nil)
	}

	duplicate, err := s.repo.HasPendingFromRequester(ctx, requesterUserID, req.TargetSlotID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to create swap request", err)
	}
	if duplicate {
		return nil, appErrors.NewAppError(appErrors.ErrConflict, "You already have a pending request for this slot", nil)
	}

	request := &entity.SwapRequest{
		RequesterUserID: requesterUserID,
		RequesterSlotID: req.RequesterSlotID,
		TargetUserID:    targetSlot.UserID,
		TargetSlotID:    req.TargetSlotID,
		Message:         req.Message,
	}

	if err := s.repo.CreatePendingWithSlotLock(ctx, request); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotUnavailable):
			return nil, appErrors.NewAppError(appErrors.ErrConflict, "Target slot is not available for swapping", nil)
		case errors.Is(err, repository.ErrPendingExists):
			return nil, appErrors.NewAppError(appErrors.ErrConflict, "This slot already has a pending swap request", nil)
		case errors.Is(err, repository.ErrEventMissing):
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "Target slot not found", nil)
		default:
			logger.Error("SwapService:CreateSwapRequest:Tx", "error", err)
			return nil, appErrors.NewAppError(appErrors.ErrTransactionFailed, "Failed to create swap request", err)
		}
	}

	detail, err := s.repo.GetDetailByID(ctx, request.ID)
	if err != nil || detail == nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to load created swap request", err)
	}

	if s.notifier != nil {
		s.notifier.NotifySwapRequested(ctx, detail.TargetUserID, detail.RequesterName, detail.TargetSlotTitle, detail.ID)
	}

	resp := dto.ToSwapRequestResponse(detail)
	return &resp, nil
}

// RespondToSwapRequest accepts or rejects a pending request. Only the target
// user may respond, and only once; the repository transaction re-checks the
// PENDING status under lock so a concurrent second response loses cleanly.
func (s *SwapService) RespondToSwapRequest(ctx context.Context, requestID uuid.UUID, userID uuid.UUID, action entity.SwapAction, responseMessage string) (*dto.SwapRequestResponse, *appErrors.AppError) {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to respond to swap request", err)
	}
	if request == nil {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "Swap request not found", nil)
	}
	if request.TargetUserID != userID {
		return nil, appErrors.NewAppError(appErrors.ErrForbidden, "You can only respond to swap requests for your own slots", nil)
	}
	if !request.IsPending() {
		return nil, appErrors.NewAppError(appErrors.ErrConflict, "This swap request has already been processed", nil)
	}

	if err := s.repo.ApplyResponse(ctx, requestID, action, responseMessage); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyProcessed):
			return nil, appErrors.NewAppError(appErrors.ErrConflict, "This swap request has already been processed", nil)
		case errors.Is(err, repository.ErrRequestMissing):
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "Swap request not found", nil)
		default:
			// Includes a referenced event deleted mid-flight: nothing was
			// committed, surface a transaction failure.
			logger.Error("SwapService:RespondToSwapRequest:Tx", "error", err, "request_id", requestID)
			return nil, appErrors.NewAppError(appErrors.ErrTransactionFailed, "Failed to process swap response", err)
		}
	}

	detail, err := s.repo.GetDetailByID(ctx, requestID)
	if err != nil || detail == nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to load updated swap request", err)
	}

	if s.notifier != nil {
		s.notifier.NotifySwapResponded(ctx, detail.RequesterUserID, detail.TargetName, detail.RequesterSlotTitle,
			action == entity.SwapActionAccept, detail.ID)
	}

	resp := dto.ToSwapRequestResponse(detail)
	return &resp, nil
}

func (s *SwapService) GetIncomingRequests(ctx context.Context, userID uuid.UUID, statusFilter string) (*dto.SwapRequestListResponse, *appErrors.AppError) {
	details, err := s.repo.ListIncoming(ctx, userID, parseStatusFilter(statusFilter))
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to fetch incoming swap requests", err)
	}

	resp := dto.ToSwapRequestListResponse(details)
	return &resp, nil
}

func (s *SwapService) GetOutgoingRequests(ctx context.Context, userID uuid.UUID, statusFilter string) (*dto.SwapRequestListResponse, *appErrors.AppError) {
	details, err := s.repo.ListOutgoing(ctx, userID, parseStatusFilter(statusFilter))
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to fetch outgoing swap requests", err)
	}

	resp := dto.ToSwapRequestListResponse(details)
	return &resp, nil
}

// An unrecognized filter value is ignored rather than rejected.
func parseStatusFilter(filter string) *entity.SwapStatus {
	if filter == "" {
		return nil
	}
	status, ok := entity.ParseSwapStatus(filter)
	if !ok {
		return nil
	}
	return &status
}
