package store

import (
	"context"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/google/uuid"
)

// DeckStore defines the interface for deck persistence.
type DeckStore interface {
	// Create saves a new deck to the store.
	// Returns ErrDuplicate if a deck with the same ID already exists.
	// Returns ErrInvalidEntity wrapping the validation error if the deck is invalid.
	Create(ctx context.Context, deck domain.Deck) error

	// GetByID retrieves a deck by its unique ID.
	// Returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Deck, error)

	// Update replaces an existing deck wholesale by its ID, card list
	// included. Returns ErrDeckNotFound if the deck does not exist.
	Update(ctx context.Context, deck domain.Deck) error

	// Delete removes a deck from the store by its ID. Cards referenced by
	// the deck are not touched; coordinated deletion is a service concern.
	// Returns ErrDeckNotFound if the deck does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all decks in creation order.
	List(ctx context.Context) ([]domain.Deck, error)
}
