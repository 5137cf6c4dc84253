package note

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"remindly/database/store"
	"remindly/models"
	"remindly/utils"

	"go.uber.org/zap"
)

var ErrEmptyTitle = errors.New("note title must not be empty")

// UpsertNoteInput creates a note when ID is empty or unknown and updates the
// matching note in place otherwise.
type UpsertNoteInput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// NoteService manages the persisted note collection.
type NoteService interface {
	List(ctx context.Context) []models.Note
	Upsert(ctx context.Context, input UpsertNoteInput) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

// DefaultNoteService implements NoteService. The mutex serializes
// read-modify-write cycles on the note collection.
type DefaultNoteService struct {
	Store store.Store
	Now   func() time.Time

	mu sync.Mutex
}

func NewDefaultNoteService(st store.Store) *DefaultNoteService {
	return &DefaultNoteService{
		Store: st,
		Now:   time.Now,
	}
}

// List returns the persisted notes, newest first.
func (s *DefaultNoteService) List(ctx context.Context) []models.Note {
	return s.Store.Notes(ctx)
}

// Upsert updates the note matching input.ID in place, or prepends a new note
// when there is no match.
func (s *DefaultNoteService) Upsert(ctx context.Context, input UpsertNoteInput) (*models.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.Store.Notes(ctx)

	if input.ID != "" {
		for i := range notes {
			if notes[i].ID != input.ID {
				continue
			}
			notes[i].Title = title
			notes[i].Desc = input.Desc
			if err := s.save(ctx, notes); err != nil {
				return nil, err
			}
			return &notes[i], nil
		}
	}

	fresh := models.Note{
		ID:    strconv.FormatInt(s.Now().UnixMilli(), 10),
		Title: title,
		Desc:  input.Desc,
	}
	updated := append([]models.Note{fresh}, notes...)
	if err := s.save(ctx, updated); err != nil {
		return nil, err
	}
	return &fresh, nil
}

// Delete removes the note with the given id; unknown ids are a no-op.
func (s *DefaultNoteService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Store.Notes(ctx)
	updated := make([]models.Note, 0, len(current))
	for _, n := range current {
		if n.ID == id {
			continue
		}
		updated = append(updated, n)
	}
	return s.save(ctx, updated)
}

func (s *DefaultNoteService) save(ctx context.Context, notes []models.Note) error {
	if err := s.Store.SaveNotes(ctx, notes); err != nil {
		utils.GetLogger().Error("Failed to save notes", zap.Error(err))
		return err
	}
	return nil
}
