package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Note-specific validation errors
var (
	// ErrNoteIDEmpty is returned when a note ID is empty or nil.
	ErrNoteIDEmpty = errors.New("note ID cannot be empty")

	// ErrNoteTitleEmpty is returned when a note's title is empty.
	ErrNoteTitleEmpty = errors.New("note title cannot be empty")

	// ErrNoteContentEmpty is returned when a note's content is empty.
	ErrNoteContentEmpty = errors.New("note content cannot be empty")
)

// Note represents a free-form text entry written by the user. Notes are
// the raw material from which flashcards are derived, either manually or
// through the generation service.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a new Note with the given title, content, and tags.
// It generates a new UUID for the note ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewNote(title, content string, tags []string) (Note, error) {
	now := time.Now().UTC()
	note := Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := note.Validate(); err != nil {
		return Note{}, err
	}

	return note, nil
}

// Validate checks if the Note has valid data.
// Returns an error if any field fails validation.
func (n *Note) Validate() error {
	if n.ID == uuid.Nil {
		return ErrNoteIDEmpty
	}

	if n.Title == "" {
		return ErrNoteTitleEmpty
	}

	if n.Content == "" {
		return ErrNoteContentEmpty
	}

	return nil
}
