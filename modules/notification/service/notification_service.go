package service

import (
	"context"
	"encoding/json"
	"fmt"

	coreEntity "slotswapper/core/entity"
	appErrors "slotswapper/core/errors"
	"slotswapper/core/logger"
	"slotswapper/core/params"
	"slotswapper/core/queue"
	authRepo "slotswapper/modules/auth/repository"
	"slotswapper/modules/notification/dto"
	"slotswapper/modules/notification/entity"
	"slotswapper/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Mailer enqueues email delivery for a notification.
type Mailer interface {
	EnqueueNotificationEmail(ctx context.Context, payload queue.NotificationEmailPayload) error
}

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*coreEntity.Pagination[dto.NotificationResponse], *appErrors.AppError)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *appErrors.AppError)
	MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) *appErrors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (*dto.MarkAllReadResponse, *appErrors.AppError)

	NotifySwapRequested(ctx context.Context, targetUserID uuid.UUID, requesterName, slotTitle string, requestID uuid.UUID)
	NotifySwapResponded(ctx context.Context, requesterUserID uuid.UUID, responderName, slotTitle string, accepted bool, requestID uuid.UUID)
}

type NotificationService struct {
	repo     repository.NotificationRepositoryInterface
	userRepo authRepo.AuthRepositoryInterface
	mailer   Mailer
}

// NewNotificationService builds the service. The mailer may be nil when the
// queue is disabled; in-app notifications still work without it.
func NewNotificationService(repo repository.NotificationRepositoryInterface, userRepo authRepo.AuthRepositoryInterface, mailer Mailer) NotificationServiceInterface {
	return &NotificationService{
		repo:     repo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*coreEntity.Pagination[dto.NotificationResponse], *appErrors.AppError) {
	page, err := s.repo.GetByUserID(ctx, userID, p)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to fetch notifications", err)
	}
	return dto.ToNotificationPage(page), nil
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *appErrors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to count unread notifications", err)
	}
	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) *appErrors.AppError {
	ok, err := s.repo.MarkAsRead(ctx, notificationID, userID)
	if err != nil {
		return appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to mark notification as read", err)
	}
	if !ok {
		return appErrors.NewAppError(appErrors.ErrNotFound, "Notification not found", nil)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (*dto.MarkAllReadResponse, *appErrors.AppError) {
	updated, err := s.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Failed to mark notifications as read", err)
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}

// NotifySwapRequested records an in-app notification for the slot owner and
// queues an email. Best-effort only.
func (s *NotificationService) NotifySwapRequested(ctx context.Context, targetUserID uuid.UUID, requesterName, slotTitle string, requestID uuid.UUID) {
	s.deliver(ctx, targetUserID, entity.NotificationTypeSwapRequested,
		"New swap request",
		fmt.Sprintf("%s wants to swap for your slot %q", requesterName, slotTitle),
		requestID)
}

// NotifySwapResponded records the outcome for the requester and queues an
// email. Best-effort only.
func (s *NotificationService) NotifySwapResponded(ctx context.Context, requesterUserID uuid.UUID, responderName, slotTitle string, accepted bool, requestID uuid.UUID) {
	notifType := entity.NotificationTypeSwapRejected
	title := "Swap request rejected"
	message := fmt.Sprintf("%s rejected your swap request for %q", responderName, slotTitle)
	if accepted {
		notifType = entity.NotificationTypeSwapAccepted
		title = "Swap request accepted"
		message = fmt.Sprintf("%s accepted your swap request, %q is now on your calendar", responderName, slotTitle)
	}
	s.deliver(ctx, requesterUserID, notifType, title, message, requestID)
}

func (s *NotificationService) deliver(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, title, message string, requestID uuid.UUID) {
	data, _ := json.Marshal(map[string]string{"swap_request_id": requestID.String()})

	notification := &entity.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Data:    types.JSONText(data),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		logger.Error("NotificationService:Deliver:Create", "error", err, "user_id", userID)
	}

	if s.mailer == nil {
		return
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		logger.Error("NotificationService:Deliver:LookupUser", "error", err, "user_id", userID)
		return
	}
	payload := queue.NotificationEmailPayload{
		UserID:  userID.String(),
		Email:   user.Email,
		Title:   title,
		Message: message,
	}
	if err := s.mailer.EnqueueNotificationEmail(ctx, payload); err != nil {
		logger.Error("NotificationService:Deliver:Enqueue", "error", err, "user_id", userID)
	}
}
