package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
)

// Verify interface compliance at compile time
var _ store.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of store.NoteStore.
type NoteStore struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]domain.Note
}

// NewNoteStore creates an empty in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[uuid.UUID]domain.Note),
	}
}

// Create implements store.NoteStore.Create.
func (s *NoteStore) Create(ctx context.Context, note domain.Note) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[note.ID]; ok {
		return store.ErrDuplicate
	}

	s.notes[note.ID] = copyNote(note)
	return nil
}

// GetByID implements store.NoteStore.GetByID.
func (s *NoteStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return domain.Note{}, store.ErrNoteNotFound
	}

	return copyNote(note), nil
}

// Update implements store.NoteStore.Update.
func (s *NoteStore) Update(ctx context.Context, note domain.Note) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[note.ID]; !ok {
		return store.ErrNoteNotFound
	}

	s.notes[note.ID] = copyNote(note)
	return nil
}

// Delete implements store.NoteStore.Delete.
func (s *NoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return store.ErrNoteNotFound
	}

	delete(s.notes, id)
	return nil
}

// List implements store.NoteStore.List.
func (s *NoteStore) List(ctx context.Context) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]domain.Note, 0, len(s.notes))
	for _, note := range s.notes {
		notes = append(notes, copyNote(note))
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

// copyNote returns a deep copy so the caller and the store never share
// the Tags slice.
func copyNote(note domain.Note) domain.Note {
	if note.Tags != nil {
		tags := make([]string, len(note.Tags))
		copy(tags, note.Tags)
		note.Tags = tags
	}
	return note
}
