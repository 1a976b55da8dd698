package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
)

// DeckService manages decks and their card membership.
type DeckService interface {
	// CreateDeck creates and stores a new empty deck.
	CreateDeck(ctx context.Context, name string) (domain.Deck, error)

	// GetDeck retrieves a deck by ID.
	// Returns store.ErrDeckNotFound if it does not exist.
	GetDeck(ctx context.Context, id uuid.UUID) (domain.Deck, error)

	// ListDecks returns all decks in creation order.
	ListDecks(ctx context.Context) ([]domain.Deck, error)

	// DeckCards returns the deck's cards in deck order.
	// Returns store.ErrDeckNotFound if the deck does not exist.
	DeckCards(ctx context.Context, id uuid.UUID) ([]domain.Card, error)

	// DeleteDeck removes a deck and all cards it owns.
	// Returns store.ErrDeckNotFound if the deck does not exist.
	DeleteDeck(ctx context.Context, id uuid.UUID) error
}

// Verify interface compliance at compile time
var _ DeckService = (*deckService)(nil)

type deckService struct {
	decks  store.DeckStore
	cards  store.CardStore
	logger *slog.Logger
}

// NewDeckService creates a DeckService backed by the given stores.
func NewDeckService(decks store.DeckStore, cards store.CardStore, log *slog.Logger) DeckService {
	if decks == nil {
		panic("decks store cannot be nil")
	}
	if cards == nil {
		panic("cards store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &deckService{
		decks:  decks,
		cards:  cards,
		logger: log.With(slog.String("component", "deck_service")),
	}
}

func (s *deckService) CreateDeck(ctx context.Context, name string) (domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := domain.NewDeck(name)
	if err != nil {
		return domain.Deck{}, err
	}

	if err := s.decks.Create(ctx, deck); err != nil {
		return domain.Deck{}, fmt.Errorf("failed to store deck: %w", err)
	}

	log.Debug("deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("name", deck.Name))
	return deck, nil
}

func (s *deckService) GetDeck(ctx context.Context, id uuid.UUID) (domain.Deck, error) {
	return s.decks.GetByID(ctx, id)
}

func (s *deckService) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	return s.decks.List(ctx)
}

func (s *deckService) DeckCards(ctx context.Context, id uuid.UUID) ([]domain.Card, error) {
	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Resolve in deck order; a dangling ID is skipped rather than
	// failing the listing.
	cards := make([]domain.Card, 0, len(deck.CardIDs))
	for _, cardID := range deck.CardIDs {
		card, err := s.cards.Get(ctx, cardID)
		if err != nil {
			if store.IsNotFoundError(err) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve card %s: %w", cardID, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, cardID := range deck.CardIDs {
		if err := s.cards.Delete(ctx, cardID); err != nil && !store.IsNotFoundError(err) {
			return fmt.Errorf("failed to delete card %s: %w", cardID, err)
		}
	}

	if err := s.decks.Delete(ctx, id); err != nil {
		return err
	}

	log.Debug("deck deleted",
		slog.String("deck_id", id.String()),
		slog.Int("cards_removed", len(deck.CardIDs)))
	return nil
}
