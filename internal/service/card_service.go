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
	"github.com/samber/lo"
)

// CardService manages the card lifecycle, keeping deck membership in
// step with the card store.
type CardService interface {
	// CreateCard creates a card in the given deck with fresh scheduling
	// state and appends it to the deck's card list.
	// Returns store.ErrDeckNotFound if the deck does not exist.
	CreateCard(
		ctx context.Context,
		deckID, sourceNoteID uuid.UUID,
		front, back, explanation string,
		cardType domain.CardType,
	) (domain.Card, error)

	// GetCard retrieves a card by ID.
	// Returns store.ErrCardNotFound if it does not exist.
	GetCard(ctx context.Context, id uuid.UUID) (domain.Card, error)

	// EditCard replaces a card's content fields, leaving its scheduling
	// state untouched. Returns store.ErrCardNotFound if it does not exist.
	EditCard(ctx context.Context, id uuid.UUID, front, back, explanation string) (domain.Card, error)

	// DeleteCard removes a card and drops it from its deck's card list.
	// Returns store.ErrCardNotFound if it does not exist.
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

// Verify interface compliance at compile time
var _ CardService = (*cardService)(nil)

type cardService struct {
	decks  store.DeckStore
	cards  store.CardStore
	logger *slog.Logger
}

// NewCardService creates a CardService backed by the given stores.
func NewCardService(decks store.DeckStore, cards store.CardStore, log *slog.Logger) CardService {
	if decks == nil {
		panic("decks store cannot be nil")
	}
	if cards == nil {
		panic("cards store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &cardService{
		decks:  decks,
		cards:  cards,
		logger: log.With(slog.String("component", "card_service")),
	}
}

func (s *cardService) CreateCard(
	ctx context.Context,
	deckID, sourceNoteID uuid.UUID,
	front, back, explanation string,
	cardType domain.CardType,
) (domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return domain.Card{}, err
	}

	card, err := domain.NewCard(deckID, sourceNoteID, front, back, explanation, cardType)
	if err != nil {
		return domain.Card{}, err
	}

	if err := s.cards.Put(ctx, card); err != nil {
		return domain.Card{}, fmt.Errorf("failed to store card: %w", err)
	}

	deck.CardIDs = append(deck.CardIDs, card.ID)
	deck.UpdatedAt = time.Now().UTC()
	if err := s.decks.Update(ctx, deck); err != nil {
		return domain.Card{}, fmt.Errorf("failed to update deck membership: %w", err)
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", deckID.String()))
	return card, nil
}

func (s *cardService) GetCard(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	return s.cards.Get(ctx, id)
}

func (s *cardService) EditCard(
	ctx context.Context,
	id uuid.UUID,
	front, back, explanation string,
) (domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.Get(ctx, id)
	if err != nil {
		return domain.Card{}, err
	}

	if err := card.UpdateContent(front, back, explanation); err != nil {
		return domain.Card{}, err
	}

	if err := s.cards.Put(ctx, card); err != nil {
		return domain.Card{}, fmt.Errorf("failed to store edited card: %w", err)
	}

	log.Debug("card edited", slog.String("card_id", id.String()))
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		return err
	}

	// Drop the card from its deck. A missing deck means the deck was
	// already removed; the card deletion stands either way.
	deck, err := s.decks.GetByID(ctx, card.DeckID)
	if err == nil {
		deck.CardIDs = lo.Without(deck.CardIDs, id)
		deck.UpdatedAt = time.Now().UTC()
		if err := s.decks.Update(ctx, deck); err != nil {
			return fmt.Errorf("failed to update deck membership: %w", err)
		}
	} else if !store.IsNotFoundError(err) {
		return fmt.Errorf("failed to load deck for card removal: %w", err)
	}

	log.Debug("card deleted", slog.String("card_id", id.String()))
	return nil
}
