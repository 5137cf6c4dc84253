package reminder

import (
	"context"
	"errors"
	"time"

	"remindly/models"
)

var (
	ErrEmptyTitle  = errors.New("reminder title must not be empty")
	ErrUnknownTone = errors.New("unknown alert tone")
	ErrInvalidDay  = errors.New("day must be formatted as YYYY-MM-DD")
)

// CreateReminderInput is the user input for the creation flow. Date carries
// the composed trigger instant (date picker value with the time picker's
// hour/minute merged in). Tone may be empty, in which case the stored default
// tone preference applies.
type CreateReminderInput struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Tone  string    `json:"tone"`
}

// ReminderService orchestrates the reminder lifecycle against the store and
// the notification scheduler.
type ReminderService interface {
	List(ctx context.Context) []models.Reminder
	ByDay(ctx context.Context, day string) ([]models.Reminder, error)
	Create(ctx context.Context, input CreateReminderInput) (*models.Reminder, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}
