package notification

import (
	"context"
	"time"

	"remindly/models"
)

// Scheduler translates a reminder into a one-shot scheduled notification.
// Schedule returns the opaque handle of the scheduled notification, or nil
// when scheduling was skipped (trigger not in the future) or the underlying
// subsystem failed; failures are logged, never returned. Cancel and CancelAll
// are best-effort.
type Scheduler interface {
	Schedule(ctx context.Context, reminder models.Reminder, tone string) *string
	Cancel(ctx context.Context, notificationID string)
	CancelAll(ctx context.Context)
}

// Queue is the underlying notification subsystem: it registers a one-shot
// delivery at an absolute instant and hands back an opaque id that can later
// be used to drop the pending delivery.
type Queue interface {
	EnqueueAt(ctx context.Context, payload models.NotificationPayload, fireAt time.Time) (string, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
