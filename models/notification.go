package models

// NotificationPayload is carried inside a scheduled delivery task and holds
// everything the worker needs to push the notification when it fires.
// Sound is the asset file name, or empty for the platform default sound.
type NotificationPayload struct {
	ReminderID string `json:"reminderId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Sound      string `json:"sound,omitempty"`
}
