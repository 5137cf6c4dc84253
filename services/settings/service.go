package settings

import (
	"context"
	"errors"
	"strconv"

	"remindly/database/store"
	"remindly/models"
	"remindly/utils"
)

var ErrUnknownTone = errors.New("unknown alert tone")

// SettingsService manages the scalar user preferences: the default alert
// tone for new reminders and the daily-summary flag. The flag is stored
// only; no summary scheduling hangs off it.
type SettingsService interface {
	DefaultTone(ctx context.Context) string
	SetDefaultTone(ctx context.Context, tone string) error
	DailySummary(ctx context.Context) bool
	SetDailySummary(ctx context.Context, enabled bool) error
}

// DefaultSettingsService implements SettingsService over the store.
type DefaultSettingsService struct {
	Store store.Store
}

func NewDefaultSettingsService(st store.Store) *DefaultSettingsService {
	return &DefaultSettingsService{Store: st}
}

func (s *DefaultSettingsService) DefaultTone(ctx context.Context) string {
	if tone, ok := s.Store.Preference(ctx, utils.StorageKeyDefaultTone); ok && tone != "" {
		return tone
	}
	return models.ToneDefault
}

func (s *DefaultSettingsService) SetDefaultTone(ctx context.Context, tone string) error {
	if !models.ValidTone(tone) {
		return ErrUnknownTone
	}
	return s.Store.SetPreference(ctx, utils.StorageKeyDefaultTone, tone)
}

func (s *DefaultSettingsService) DailySummary(ctx context.Context) bool {
	value, ok := s.Store.Preference(ctx, utils.StorageKeyDailySummary)
	if !ok {
		return false
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return enabled
}

func (s *DefaultSettingsService) SetDailySummary(ctx context.Context, enabled bool) error {
	return s.Store.SetPreference(ctx, utils.StorageKeyDailySummary, strconv.FormatBool(enabled))
}
