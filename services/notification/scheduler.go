package notification

import (
	"context"
	"time"

	"remindly/models"
	"remindly/utils"

	"go.uber.org/zap"
)

// DefaultScheduler implements Scheduler on top of a Queue. Now is the clock
// used for the past-trigger check; tests substitute a fixed one.
type DefaultScheduler struct {
	Queue Queue
	Now   func() time.Time
}

func NewDefaultScheduler(queue Queue) *DefaultScheduler {
	return &DefaultScheduler{
		Queue: queue,
		Now:   time.Now,
	}
}

// Schedule registers a one-shot notification for the reminder's trigger
// instant. A trigger at or before the current time is rejected without
// touching the queue; no notification is ever scheduled for a non-future
// instant.
func (s *DefaultScheduler) Schedule(ctx context.Context, reminder models.Reminder, tone string) *string {
	logger := utils.GetLogger()

	trigger := reminder.Date
	if !trigger.After(s.Now()) {
		logger.Warn("Scheduled time is in the past. Notification will not be triggered.",
			zap.String("reminderId", reminder.ID),
			zap.Time("trigger", trigger))
		return nil
	}

	payload := models.NotificationPayload{
		ReminderID: reminder.ID,
		Title:      "Reminder",
		Body:       reminder.Title,
		Sound:      SoundAsset(tone),
	}

	id, err := s.Queue.EnqueueAt(ctx, payload, trigger)
	if err != nil {
		logger.Error("Failed to schedule notification",
			zap.String("reminderId", reminder.ID),
			zap.Error(err))
		return nil
	}

	return &id
}

// Cancel drops one scheduled notification by handle. Cancelling a handle that
// already fired or was already cancelled is a no-op.
func (s *DefaultScheduler) Cancel(ctx context.Context, notificationID string) {
	if err := s.Queue.Delete(ctx, notificationID); err != nil {
		utils.GetLogger().Warn("Failed to cancel notification",
			zap.String("notificationId", notificationID),
			zap.Error(err))
	}
}

// CancelAll drops every scheduled notification for this application.
func (s *DefaultScheduler) CancelAll(ctx context.Context) {
	if err := s.Queue.DeleteAll(ctx); err != nil {
		utils.GetLogger().Warn("Failed to cancel all notifications", zap.Error(err))
	}
}

// SoundAsset maps a tone name to the notification's sound asset. The literal
// tone "default" selects the platform default sound, expressed as an empty
// asset name; anything else references "<tone>.wav".
func SoundAsset(tone string) string {
	if tone == "" || tone == models.ToneDefault {
		return ""
	}
	return tone + ".wav"
}
