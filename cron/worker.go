package cron

import (
	"context"
	"encoding/json"

	"remindly/config"
	"remindly/models"
	"remindly/services/tasks"
	"remindly/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker starts the asynq worker that delivers scheduled
// notifications when their trigger instant arrives.
func InitNotificationWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				utils.NotificationQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationDeliver, handleDeliveryTask)

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting notification worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("Notification worker failed to start", zap.Error(err))
		}
	}()
}

// handleDeliveryTask pushes the fired notification to the configured device
// over FCM. Returning an error makes asynq retry the delivery.
func handleDeliveryTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.NotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("Invalid notification payload", zap.Error(err))
		return err
	}

	if utils.FCMClient == nil {
		logger.Warn("FCM client not configured, dropping notification",
			zap.String("reminderId", p.ReminderID))
		return nil
	}

	token := config.AppConfig.DeviceFCMToken
	if token == "" {
		logger.Warn("No device FCM token configured, dropping notification",
			zap.String("reminderId", p.ReminderID))
		return nil
	}

	// FCM wants the literal "default" for the platform default sound; an
	// empty Sound in the payload means exactly that.
	sound := p.Sound
	if sound == "" {
		sound = "default"
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: map[string]string{
			"reminderId": p.ReminderID,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: sound,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: sound,
				},
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Error("Failed to deliver notification",
			zap.String("reminderId", p.ReminderID), zap.Error(err))
		return err
	}

	logger.Info("Notification delivered", zap.String("reminderId", p.ReminderID))
	return nil
}
