package models

import "time"

// Alert tones a reminder can play. ToneDefault selects the platform default
// sound; every other tone maps to a bundled "<tone>.wav" asset.
const (
	ToneDefault = "default"
	ToneAlert   = "alert"
	ToneChime   = "chime"
	ToneBeep    = "beep"
)

// ValidTone reports whether name is one of the known alert tones.
func ValidTone(name string) bool {
	switch name {
	case ToneDefault, ToneAlert, ToneChime, ToneBeep:
		return true
	}
	return false
}

// Reminder is a persisted reminder record. ID is assigned once at creation
// and never changes; Date is the notification trigger instant and Time is its
// short display form, both fixed at creation. NotificationID holds the handle
// of the scheduled notification, or nil when scheduling was skipped.
type Reminder struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	Tone           string    `json:"tone"`
	NotificationID *string   `json:"notificationId"`
}
