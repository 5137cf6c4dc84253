package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"remindly/models"
	"remindly/utils"
)

type memKV struct {
	data    map[string]string
	getErr  error
	setErr  error
	setKeys []string
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

func TestRemindersEmptyWhenAbsent(t *testing.T) {
	s := NewStore(newMemKV())

	reminders := s.Reminders(context.Background())
	if len(reminders) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(reminders))
	}
}

func TestRemindersEmptyOnCorruptData(t *testing.T) {
	kv := newMemKV()
	kv.data[utils.StorageKeyReminders] = "{not json"
	s := NewStore(kv)

	reminders := s.Reminders(context.Background())
	if len(reminders) != 0 {
		t.Fatalf("expected empty collection for corrupt data, got %d records", len(reminders))
	}
}

func TestRemindersEmptyOnReadFailure(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("storage unavailable")
	s := NewStore(kv)

	reminders := s.Reminders(context.Background())
	if len(reminders) != 0 {
		t.Fatalf("expected empty collection on read failure, got %d records", len(reminders))
	}
}

func TestRemindersRoundTrip(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()

	id := "notif-1"
	saved := []models.Reminder{
		{
			ID:             "1716900000000",
			Title:          "Take medicine",
			Date:           time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
			Time:           "09:00 AM",
			Tone:           models.ToneChime,
			NotificationID: &id,
		},
		{
			ID:    "1716900000001",
			Title: "Water plants",
			Date:  time.Date(2026, 9, 3, 18, 30, 0, 0, time.UTC),
			Time:  "06:30 PM",
			Tone:  models.ToneDefault,
		},
	}

	if err := s.SaveReminders(ctx, saved); err != nil {
		t.Fatalf("SaveReminders failed: %v", err)
	}

	got := s.Reminders(ctx)
	if len(got) != len(saved) {
		t.Fatalf("round trip length mismatch: got %d, want %d", len(got), len(saved))
	}
	for i := range saved {
		if got[i].ID != saved[i].ID || got[i].Title != saved[i].Title {
			t.Errorf("record %d mismatch: got %+v, want %+v", i, got[i], saved[i])
		}
		if !got[i].Date.Equal(saved[i].Date) {
			t.Errorf("record %d date mismatch: got %v, want %v", i, got[i].Date, saved[i].Date)
		}
	}
	if got[0].NotificationID == nil || *got[0].NotificationID != id {
		t.Errorf("notification handle lost in round trip: %+v", got[0].NotificationID)
	}
	if got[1].NotificationID != nil {
		t.Errorf("expected nil notification handle, got %q", *got[1].NotificationID)
	}
}

func TestSaveRemindersPropagatesWriteFailure(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("storage unavailable")
	s := NewStore(kv)

	if err := s.SaveReminders(context.Background(), []models.Reminder{}); err == nil {
		t.Fatal("expected write failure to propagate")
	}
}

func TestNotesRoundTrip(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()

	saved := []models.Note{
		{ID: "1716900000002", Title: "Groceries", Desc: "milk, eggs"},
		{ID: "1716900000003", Title: "Ideas"},
	}
	if err := s.SaveNotes(ctx, saved); err != nil {
		t.Fatalf("SaveNotes failed: %v", err)
	}

	got := s.Notes(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(got))
	}
	if got[0] != saved[0] || got[1] != saved[1] {
		t.Errorf("notes mismatch: got %+v, want %+v", got, saved)
	}
}

func TestNotesEmptyWhenAbsent(t *testing.T) {
	s := NewStore(newMemKV())
	if notes := s.Notes(context.Background()); len(notes) != 0 {
		t.Fatalf("expected empty collection, got %d notes", len(notes))
	}
}

func TestPreferences(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()

	if _, ok := s.Preference(ctx, utils.StorageKeyDefaultTone); ok {
		t.Fatal("expected absent preference before first write")
	}

	if err := s.SetPreference(ctx, utils.StorageKeyDefaultTone, models.ToneBeep); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}

	value, ok := s.Preference(ctx, utils.StorageKeyDefaultTone)
	if !ok || value != models.ToneBeep {
		t.Fatalf("expected %q, got %q (ok=%v)", models.ToneBeep, value, ok)
	}
}
