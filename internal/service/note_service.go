package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
)

// NoteService manages the note lifecycle.
type NoteService interface {
	// CreateNote creates and stores a new note.
	CreateNote(ctx context.Context, title, content string, tags []string) (domain.Note, error)

	// GetNote retrieves a note by ID.
	// Returns store.ErrNoteNotFound if it does not exist.
	GetNote(ctx context.Context, id uuid.UUID) (domain.Note, error)

	// UpdateNote replaces a note's title, content, and tags.
	// Returns store.ErrNoteNotFound if it does not exist.
	UpdateNote(ctx context.Context, id uuid.UUID, title, content string, tags []string) (domain.Note, error)

	// DeleteNote removes a note. Cards already derived from the note
	// survive; they reference it by ID only.
	DeleteNote(ctx context.Context, id uuid.UUID) error

	// ListNotes returns all notes, most recently updated first.
	ListNotes(ctx context.Context) ([]domain.Note, error)
}

// Verify interface compliance at compile time
var _ NoteService = (*noteService)(nil)

type noteService struct {
	notes  store.NoteStore
	logger *slog.Logger
}

// NewNoteService creates a NoteService backed by the given store.
func NewNoteService(notes store.NoteStore, log *slog.Logger) NoteService {
	if notes == nil {
		panic("notes store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &noteService{
		notes:  notes,
		logger: log.With(slog.String("component", "note_service")),
	}
}

func (s *noteService) CreateNote(
	ctx context.Context,
	title, content string,
	tags []string,
) (domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	note, err := domain.NewNote(title, content, tags)
	if err != nil {
		return domain.Note{}, err
	}

	if err := s.notes.Create(ctx, note); err != nil {
		return domain.Note{}, fmt.Errorf("failed to store note: %w", err)
	}

	log.Debug("note created", slog.String("note_id", note.ID.String()))
	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, id uuid.UUID) (domain.Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *noteService) UpdateNote(
	ctx context.Context,
	id uuid.UUID,
	title, content string,
	tags []string,
) (domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return domain.Note{}, err
	}

	note.Title = title
	note.Content = content
	note.Tags = tags
	note.UpdatedAt = time.Now().UTC()

	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return domain.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	log.Debug("note updated", slog.String("note_id", id.String()))
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.notes.Delete(ctx, id); err != nil {
		return err
	}

	log.Debug("note deleted", slog.String("note_id", id.String()))
	return nil
}

func (s *noteService) ListNotes(ctx context.Context) ([]domain.Note, error) {
	return s.notes.List(ctx)
}
