package store

import (
	"context"
	"encoding/json"

	"remindly/models"
	"remindly/utils"

	"go.uber.org/zap"
)

// DefaultStore implements Store over a KV backend, serializing each
// collection as a single JSON array under its storage key.
type DefaultStore struct {
	kv KV
}

func NewStore(kv KV) *DefaultStore {
	return &DefaultStore{kv: kv}
}

// Reminders reads the persisted reminder collection. Missing or corrupt data
// is logged and treated as an empty collection, never surfaced to callers.
func (s *DefaultStore) Reminders(ctx context.Context) []models.Reminder {
	raw, ok := s.read(ctx, utils.StorageKeyReminders)
	if !ok {
		return []models.Reminder{}
	}

	var reminders []models.Reminder
	if err := json.Unmarshal([]byte(raw), &reminders); err != nil {
		utils.GetLogger().Error("Error reading reminders",
			zap.String("key", utils.StorageKeyReminders), zap.Error(err))
		return []models.Reminder{}
	}
	return reminders
}

// SaveReminders overwrites the persisted reminder collection.
func (s *DefaultStore) SaveReminders(ctx context.Context, reminders []models.Reminder) error {
	return s.write(ctx, utils.StorageKeyReminders, reminders)
}

// Notes reads the persisted note collection with the same read-or-default
// contract as Reminders.
func (s *DefaultStore) Notes(ctx context.Context) []models.Note {
	raw, ok := s.read(ctx, utils.StorageKeyNotes)
	if !ok {
		return []models.Note{}
	}

	var notes []models.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		utils.GetLogger().Error("Error reading notes",
			zap.String("key", utils.StorageKeyNotes), zap.Error(err))
		return []models.Note{}
	}
	return notes
}

// SaveNotes overwrites the persisted note collection.
func (s *DefaultStore) SaveNotes(ctx context.Context, notes []models.Note) error {
	return s.write(ctx, utils.StorageKeyNotes, notes)
}

// Preference reads a scalar preference value. Absent values and storage
// failures both report false.
func (s *DefaultStore) Preference(ctx context.Context, key string) (string, bool) {
	return s.read(ctx, key)
}

// SetPreference overwrites a scalar preference value.
func (s *DefaultStore) SetPreference(ctx context.Context, key, value string) error {
	return s.kv.Set(ctx, key, value)
}

func (s *DefaultStore) read(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		utils.GetLogger().Error("Storage read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, ok
}

func (s *DefaultStore) write(ctx context.Context, key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(data))
}
