package settings

import (
	"context"
	"errors"
	"testing"

	"remindly/models"
	"remindly/utils"
)

type fakeStore struct {
	prefs map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{prefs: map[string]string{}}
}

func (f *fakeStore) Reminders(context.Context) []models.Reminder { return nil }

func (f *fakeStore) SaveReminders(context.Context, []models.Reminder) error { return nil }

func (f *fakeStore) Notes(context.Context) []models.Note { return nil }

func (f *fakeStore) SaveNotes(context.Context, []models.Note) error { return nil }

func (f *fakeStore) Preference(_ context.Context, key string) (string, bool) {
	value, ok := f.prefs[key]
	return value, ok
}

func (f *fakeStore) SetPreference(_ context.Context, key, value string) error {
	f.prefs[key] = value
	return nil
}

func TestDefaultToneFallsBack(t *testing.T) {
	svc := NewDefaultSettingsService(newFakeStore())

	if tone := svc.DefaultTone(context.Background()); tone != models.ToneDefault {
		t.Fatalf("tone = %q, want %q", tone, models.ToneDefault)
	}
}

func TestSetDefaultTone(t *testing.T) {
	st := newFakeStore()
	svc := NewDefaultSettingsService(st)
	ctx := context.Background()

	if err := svc.SetDefaultTone(ctx, models.ToneChime); err != nil {
		t.Fatalf("SetDefaultTone failed: %v", err)
	}
	if tone := svc.DefaultTone(ctx); tone != models.ToneChime {
		t.Errorf("tone = %q, want %q", tone, models.ToneChime)
	}
	if st.prefs[utils.StorageKeyDefaultTone] != models.ToneChime {
		t.Errorf("preference not persisted: %v", st.prefs)
	}
}

func TestSetDefaultToneRejectsUnknown(t *testing.T) {
	svc := NewDefaultSettingsService(newFakeStore())

	if err := svc.SetDefaultTone(context.Background(), "klaxon"); !errors.Is(err, ErrUnknownTone) {
		t.Fatalf("err = %v, want ErrUnknownTone", err)
	}
}

func TestDailySummary(t *testing.T) {
	st := newFakeStore()
	svc := NewDefaultSettingsService(st)
	ctx := context.Background()

	if svc.DailySummary(ctx) {
		t.Fatal("flag must default to false")
	}

	if err := svc.SetDailySummary(ctx, true); err != nil {
		t.Fatalf("SetDailySummary failed: %v", err)
	}
	if !svc.DailySummary(ctx) {
		t.Error("flag not persisted")
	}

	// Corrupt stored value degrades to false.
	st.prefs[utils.StorageKeyDailySummary] = "maybe"
	if svc.DailySummary(ctx) {
		t.Error("unparseable flag must read as false")
	}
}
