package store

import (
	"context"

	"remindly/models"
)

// KV is the persistent key-value storage the store runs on. Get reports
// absence through the bool so callers can distinguish "no data yet" from a
// storage failure.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the serialized representation of the reminder and note
// collections and of scalar preference values. Reads degrade to an empty
// result on missing or unreadable data; writes overwrite the whole value.
// Callers always pass the complete desired collection.
type Store interface {
	Reminders(ctx context.Context) []models.Reminder
	SaveReminders(ctx context.Context, reminders []models.Reminder) error

	Notes(ctx context.Context) []models.Note
	SaveNotes(ctx context.Context, notes []models.Note) error

	Preference(ctx context.Context, key string) (string, bool)
	SetPreference(ctx context.Context, key, value string) error
}
