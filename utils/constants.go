// File: utils/constants.go
package utils

// Storage keys for the persisted collections and preferences. The reminder
// and note collections are stored whole under their key; preferences are bare
// scalar values.
const (
	StorageKeyReminders    = "REMINDERS"
	StorageKeyNotes        = "NOTES"
	StorageKeyDefaultTone  = "DEFAULT_TONE"
	StorageKeyDailySummary = "DAILY_SUMMARY"
)

// NotificationQueue is the asynq queue scheduled notifications live on.
const NotificationQueue = "default"
