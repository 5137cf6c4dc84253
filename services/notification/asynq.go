package notification

import (
	"context"
	"time"

	"remindly/models"
	"remindly/services/tasks"
	"remindly/utils"

	"github.com/hibiken/asynq"
)

// AsynqQueue implements Queue on a Redis-backed asynq queue. The asynq task
// id doubles as the notification handle.
type AsynqQueue struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewAsynqQueue(redisOpt asynq.RedisClientOpt) *AsynqQueue {
	return &AsynqQueue{
		client:    asynq.NewClient(redisOpt),
		inspector: asynq.NewInspector(redisOpt),
	}
}

func (q *AsynqQueue) EnqueueAt(ctx context.Context, payload models.NotificationPayload, fireAt time.Time) (string, error) {
	task, opts, err := tasks.NewDeliveryTask(payload, fireAt)
	if err != nil {
		return "", err
	}

	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

func (q *AsynqQueue) Delete(ctx context.Context, id string) error {
	return q.inspector.DeleteTask(utils.NotificationQueue, id)
}

func (q *AsynqQueue) DeleteAll(ctx context.Context) error {
	_, err := q.inspector.DeleteAllScheduledTasks(utils.NotificationQueue)
	return err
}

// Close releases the underlying asynq connections.
func (q *AsynqQueue) Close() error {
	if err := q.client.Close(); err != nil {
		return err
	}
	return q.inspector.Close()
}
