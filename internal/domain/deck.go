package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors
var (
	// ErrDeckIDEmpty is returned when a deck ID is empty or nil.
	ErrDeckIDEmpty = errors.New("deck ID cannot be empty")

	// ErrDeckNameEmpty is returned when a deck's name is empty.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")
)

// Deck groups cards for study. It owns an ordered list of card IDs;
// the cards themselves live in the card store and are resolved by ID.
type Deck struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	CardIDs   []uuid.UUID `json:"card_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewDeck creates a new empty Deck with the given name.
// Returns an error if validation fails.
func NewDeck(name string) (Deck, error) {
	now := time.Now().UTC()
	deck := Deck{
		ID:        uuid.New(),
		Name:      name,
		CardIDs:   []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := deck.Validate(); err != nil {
		return Deck{}, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
// Returns an error if any field fails validation.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}

	if d.Name == "" {
		return ErrDeckNameEmpty
	}

	return nil
}

// Contains reports whether the deck holds the given card ID.
func (d *Deck) Contains(cardID uuid.UUID) bool {
	for _, id := range d.CardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}
