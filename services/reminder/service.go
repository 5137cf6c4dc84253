package reminder

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"remindly/database/store"
	"remindly/models"
	"remindly/services/notification"
	"remindly/utils"

	"go.uber.org/zap"
)

// timeDisplayLayout is the short display form derived from the trigger
// instant at creation time, e.g. "09:00 AM". It is stored on the record and
// never recomputed.
const timeDisplayLayout = "03:04 PM"

const dayLayout = "2006-01-02"

// DefaultReminderService implements ReminderService. The mutex serializes
// every read-modify-write of the reminder collection so concurrent creation
// or deletion flows cannot drop each other's records.
type DefaultReminderService struct {
	Store     store.Store
	Scheduler notification.Scheduler
	Now       func() time.Time

	mu sync.Mutex
}

func NewDefaultReminderService(st store.Store, scheduler notification.Scheduler) *DefaultReminderService {
	return &DefaultReminderService{
		Store:     st,
		Scheduler: scheduler,
		Now:       time.Now,
	}
}

// List returns the persisted reminder collection in stored order.
func (s *DefaultReminderService) List(ctx context.Context) []models.Reminder {
	return s.Store.Reminders(ctx)
}

// ByDay returns the reminders whose trigger falls on the given YYYY-MM-DD
// day.
func (s *DefaultReminderService) ByDay(ctx context.Context, day string) ([]models.Reminder, error) {
	if _, err := time.Parse(dayLayout, day); err != nil {
		return nil, ErrInvalidDay
	}

	matched := []models.Reminder{}
	for _, r := range s.Store.Reminders(ctx) {
		if r.Date.Format(dayLayout) == day {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Create validates the input, schedules the notification and appends the new
// record to the persisted collection. A reminder whose trigger is not in the
// future is still saved, just without a notification handle.
func (s *DefaultReminderService) Create(ctx context.Context, input CreateReminderInput) (*models.Reminder, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	tone := input.Tone
	if tone == "" {
		tone = s.defaultTone(ctx)
	}
	if !models.ValidTone(tone) {
		return nil, ErrUnknownTone
	}

	rec := models.Reminder{
		ID:    strconv.FormatInt(s.Now().UnixMilli(), 10),
		Title: title,
		Date:  input.Date,
		Time:  input.Date.Format(timeDisplayLayout),
		Tone:  tone,
	}
	rec.NotificationID = s.Scheduler.Schedule(ctx, rec, tone)

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.Store.Reminders(ctx), rec)
	if err := s.Store.SaveReminders(ctx, updated); err != nil {
		utils.GetLogger().Error("Failed to save reminders",
			zap.String("reminderId", rec.ID), zap.Error(err))
		return nil, err
	}

	return &rec, nil
}

// Delete removes the reminder with the given id, cancelling its outstanding
// notification first so it cannot fire for a record that no longer exists.
// Deleting an unknown id is a no-op.
func (s *DefaultReminderService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Store.Reminders(ctx)
	updated := make([]models.Reminder, 0, len(current))
	for _, r := range current {
		if r.ID == id {
			if r.NotificationID != nil {
				s.Scheduler.Cancel(ctx, *r.NotificationID)
			}
			continue
		}
		updated = append(updated, r)
	}

	if err := s.Store.SaveReminders(ctx, updated); err != nil {
		utils.GetLogger().Error("Failed to save reminders after delete",
			zap.String("reminderId", id), zap.Error(err))
		return err
	}
	return nil
}

// ClearAll cancels every scheduled notification and empties the collection.
func (s *DefaultReminderService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Scheduler.CancelAll(ctx)

	if err := s.Store.SaveReminders(ctx, []models.Reminder{}); err != nil {
		utils.GetLogger().Error("Failed to clear reminders", zap.Error(err))
		return err
	}
	return nil
}

func (s *DefaultReminderService) defaultTone(ctx context.Context) string {
	if tone, ok := s.Store.Preference(ctx, utils.StorageKeyDefaultTone); ok && tone != "" {
		return tone
	}
	return models.ToneDefault
}
