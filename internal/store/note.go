package store

import (
	"context"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/google/uuid"
)

// NoteStore defines the interface for note persistence.
type NoteStore interface {
	// Create saves a new note to the store.
	// Returns ErrDuplicate if a note with the same ID already exists.
	// Returns ErrInvalidEntity wrapping the validation error if the note is invalid.
	Create(ctx context.Context, note domain.Note) error

	// GetByID retrieves a note by its unique ID.
	// Returns ErrNoteNotFound if the note does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Note, error)

	// Update replaces an existing note wholesale by its ID.
	// Returns ErrNoteNotFound if the note does not exist.
	// Returns ErrInvalidEntity wrapping the validation error if the note is invalid.
	Update(ctx context.Context, note domain.Note) error

	// Delete removes a note from the store by its ID.
	// Returns ErrNoteNotFound if the note does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all notes, most recently updated first.
	List(ctx context.Context) ([]domain.Note, error)
}
