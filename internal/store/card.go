package store

import (
	"context"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/google/uuid"
)

// CardStore defines the interface for card persistence.
//
// Cards move through the store by value: Get returns a copy and Put
// replaces the stored card wholesale by its ID. There are no partial
// field patches, so a committed scheduling update can never interleave
// with a content edit half-applied.
type CardStore interface {
	// Get retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	Get(ctx context.Context, id uuid.UUID) (domain.Card, error)

	// Put stores the card under its ID, replacing any existing card with
	// the same ID. Returns ErrInvalidEntity wrapping the validation error
	// if the card is invalid.
	Put(ctx context.Context, card domain.Card) error

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByDeck returns all cards belonging to the given deck, in
	// creation order. A deck with no cards yields an empty slice.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
}
