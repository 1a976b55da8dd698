package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardType identifies the presentation style of a flashcard.
type CardType string

// Possible card type values
const (
	CardTypeQA    CardType = "qa"
	CardTypeCloze CardType = "cloze"
	CardTypeMCQ   CardType = "mcq"
)

// ParseCardType converts a string to a CardType, case-insensitively.
// Returns ErrInvalidCardType if the string is not a recognized type.
func ParseCardType(s string) (CardType, error) {
	switch CardType(strings.ToLower(s)) {
	case CardTypeQA:
		return CardTypeQA, nil
	case CardTypeCloze:
		return CardTypeCloze, nil
	case CardTypeMCQ:
		return CardTypeMCQ, nil
	default:
		return "", ErrInvalidCardType
	}
}

// DefaultEaseFactor is the ease factor assigned to brand new cards.
const DefaultEaseFactor = 2.5

// MinEaseFactor is the floor below which a card's ease factor never drops.
const MinEaseFactor = 1.3

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardDeckIDEmpty is returned when a card's deck ID is empty or nil.
	ErrCardDeckIDEmpty = errors.New("card deck ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back is empty.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrInvalidCardType is returned when a card type is not recognized.
	ErrInvalidCardType = errors.New("invalid card type")

	// ErrInvalidRepetition is returned when a repetition count is negative.
	ErrInvalidRepetition = errors.New("repetition count cannot be negative")

	// ErrInvalidInterval is returned when an interval is negative.
	ErrInvalidInterval = errors.New("interval cannot be negative")

	// ErrInvalidEaseFactor is returned when an ease factor is below the floor.
	ErrInvalidEaseFactor = errors.New("ease factor cannot be below 1.3")
)

// Card represents a flashcard derived from a note, together with its
// spaced-repetition scheduling state. Content fields (Front, Back,
// Explanation, CardType) are opaque to the scheduler and the review
// session; only the scheduling fields below them are ever inspected.
type Card struct {
	ID           uuid.UUID `json:"id"`
	DeckID       uuid.UUID `json:"deck_id"`
	SourceNoteID uuid.UUID `json:"source_note_id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Explanation  string    `json:"explanation,omitempty"`
	CardType     CardType  `json:"card_type"`

	// Scheduling state. Repetition counts consecutive successful reviews
	// since the last lapse; Interval is the gap to the next review in
	// days; EaseFactor governs interval growth and never drops below 1.3.
	Repetition int       `json:"repetition"`
	Interval   int       `json:"interval"`
	EaseFactor float64   `json:"ease_factor"`
	DueDate    time.Time `json:"due_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard creates a new Card in the given deck with fresh scheduling
// state: zero repetitions, zero interval, the default ease factor, and a
// due date of now, so the card is eligible for review immediately.
// Returns an error if validation fails.
func NewCard(
	deckID, sourceNoteID uuid.UUID,
	front, back, explanation string,
	cardType CardType,
) (Card, error) {
	now := time.Now().UTC()
	card := Card{
		ID:           uuid.New(),
		DeckID:       deckID,
		SourceNoteID: sourceNoteID,
		Front:        front,
		Back:         back,
		Explanation:  explanation,
		CardType:     cardType,
		Repetition:   0,
		Interval:     0,
		EaseFactor:   DefaultEaseFactor,
		DueDate:      now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.DeckID == uuid.Nil {
		return ErrCardDeckIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	switch c.CardType {
	case CardTypeQA, CardTypeCloze, CardTypeMCQ:
	default:
		return ErrInvalidCardType
	}

	if c.Repetition < 0 {
		return ErrInvalidRepetition
	}

	if c.Interval < 0 {
		return ErrInvalidInterval
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	return nil
}

// IsDue reports whether the card is eligible for review at the given time.
func (c *Card) IsDue(now time.Time) bool {
	return !c.DueDate.After(now)
}

// UpdateContent replaces the card's content fields without touching its
// scheduling state. Returns an error if the new content is invalid.
func (c *Card) UpdateContent(front, back, explanation string) error {
	origFront, origBack, origExplanation := c.Front, c.Back, c.Explanation
	c.Front = front
	c.Back = back
	c.Explanation = explanation

	if err := c.Validate(); err != nil {
		c.Front, c.Back, c.Explanation = origFront, origBack, origExplanation
		return err
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}
