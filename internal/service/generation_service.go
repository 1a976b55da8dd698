package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// GenerationService turns a note into stored flashcards via the
// generation boundary. Generation happens out-of-band, before any review
// session runs; it is never interleaved with session state transitions.
type GenerationService interface {
	// GenerateCards derives flashcard drafts from the note's content and
	// stores them as cards of the target deck, each with fresh scheduling
	// state (due immediately).
	// Returns store.ErrNoteNotFound or store.ErrDeckNotFound when either
	// side of the operation is missing, or a generation error otherwise.
	GenerateCards(ctx context.Context, noteID, deckID uuid.UUID) ([]domain.Card, error)
}

// Verify interface compliance at compile time
var _ GenerationService = (*generationService)(nil)

type generationService struct {
	notes     store.NoteStore
	decks     store.DeckStore
	cards     store.CardStore
	generator generation.Generator
	logger    *slog.Logger
}

// NewGenerationService creates a GenerationService wiring the stores to
// the given generator.
func NewGenerationService(
	notes store.NoteStore,
	decks store.DeckStore,
	cards store.CardStore,
	generator generation.Generator,
	log *slog.Logger,
) GenerationService {
	if notes == nil {
		panic("notes store cannot be nil")
	}
	if decks == nil {
		panic("decks store cannot be nil")
	}
	if cards == nil {
		panic("cards store cannot be nil")
	}
	if generator == nil {
		panic("generator cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &generationService{
		notes:     notes,
		decks:     decks,
		cards:     cards,
		generator: generator,
		logger:    log.With(slog.String("component", "generation_service")),
	}
}

func (s *generationService) GenerateCards(
	ctx context.Context,
	noteID, deckID uuid.UUID,
) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}

	drafts, err := s.generator.GenerateCards(ctx, note.Content)
	if err != nil {
		log.Error("card generation failed",
			slog.String("note_id", noteID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	cards := make([]domain.Card, 0, len(drafts))
	for _, draft := range drafts {
		card, err := domain.NewCard(
			deckID, noteID,
			draft.Front, draft.Back, draft.Explanation,
			draft.CardType,
		)
		if err != nil {
			// A draft that fails domain validation is dropped, not fatal;
			// the generator's output is untrusted input.
			log.Warn("dropping invalid generated card",
				slog.String("note_id", noteID.String()),
				slog.String("error", err.Error()))
			continue
		}

		if err := s.cards.Put(ctx, card); err != nil {
			return nil, fmt.Errorf("failed to store generated card: %w", err)
		}
		cards = append(cards, card)
	}

	deck.CardIDs = append(deck.CardIDs, lo.Map(cards, func(c domain.Card, _ int) uuid.UUID {
		return c.ID
	})...)
	deck.UpdatedAt = time.Now().UTC()
	if err := s.decks.Update(ctx, deck); err != nil {
		return nil, fmt.Errorf("failed to update deck membership: %w", err)
	}

	log.Info("cards generated from note",
		slog.String("note_id", noteID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(cards)))

	return cards, nil
}
