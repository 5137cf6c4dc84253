package tasks

import (
	"encoding/json"
	"time"

	"remindly/models"

	"github.com/hibiken/asynq"
)

const TypeNotificationDeliver = "notification:deliver"

// NewDeliveryTask builds the one-shot task that fires the reminder's
// notification at fireAt.
func NewDeliveryTask(payload models.NotificationPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationDeliver, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
