package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
)

// Verify interface compliance at compile time
var _ store.CardStore = (*CardStore)(nil)

// CardStore is an in-memory implementation of store.CardStore. Cards are
// plain value structs, so map reads and writes already copy them; no
// caller ever holds a reference into the store.
type CardStore struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]domain.Card
}

// NewCardStore creates an empty in-memory card store.
func NewCardStore() *CardStore {
	return &CardStore{
		cards: make(map[uuid.UUID]domain.Card),
	}
}

// Get implements store.CardStore.Get.
func (s *CardStore) Get(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	if !ok {
		return domain.Card{}, store.ErrCardNotFound
	}

	return card, nil
}

// Put implements store.CardStore.Put.
func (s *CardStore) Put(ctx context.Context, card domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards[card.ID] = card
	return nil
}

// Delete implements store.CardStore.Delete.
func (s *CardStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[id]; !ok {
		return store.ErrCardNotFound
	}

	delete(s.cards, id)
	return nil
}

// ListByDeck implements store.CardStore.ListByDeck.
func (s *CardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]domain.Card, 0)
	for _, card := range s.cards {
		if card.DeckID == deckID {
			cards = append(cards, card)
		}
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})

	return cards, nil
}
