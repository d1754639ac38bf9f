package service

import (
	"context"
	"encoding/json"

	"slotswapper/core/logger"
	"slotswapper/core/queue"

	"github.com/hibiken/asynq"
)

// NewEmailTaskHandler returns the worker handler for queued notification
// emails. Delivery is handed to the provided sender; a nil sender logs the
// message instead of sending it.
func NewEmailTaskHandler(sender EmailSender) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload queue.NotificationEmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("NotificationWorker:Email:Unmarshal", "error", err)
			return err
		}

		if sender == nil {
			logger.Info("NotificationWorker:Email:Skipped", "email", payload.Email, "title", payload.Title)
			return nil
		}
		if err := sender.Send(ctx, payload.Email, payload.Title, payload.Message); err != nil {
			logger.Error("NotificationWorker:Email:Send", "error", err, "email", payload.Email)
			return err
		}

		logger.Info("NotificationWorker:Email:Sent", "email", payload.Email, "title", payload.Title)
		return nil
	}
}

// EmailSender delivers a rendered notification email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
