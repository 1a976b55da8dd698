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
var _ store.DeckStore = (*DeckStore)(nil)

// DeckStore is an in-memory implementation of store.DeckStore.
type DeckStore struct {
	mu    sync.RWMutex
	decks map[uuid.UUID]domain.Deck
}

// NewDeckStore creates an empty in-memory deck store.
func NewDeckStore() *DeckStore {
	return &DeckStore{
		decks: make(map[uuid.UUID]domain.Deck),
	}
}

// Create implements store.DeckStore.Create.
func (s *DeckStore) Create(ctx context.Context, deck domain.Deck) error {
	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.decks[deck.ID]; ok {
		return store.ErrDuplicate
	}

	s.decks[deck.ID] = copyDeck(deck)
	return nil
}

// GetByID implements store.DeckStore.GetByID.
func (s *DeckStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, ok := s.decks[id]
	if !ok {
		return domain.Deck{}, store.ErrDeckNotFound
	}

	return copyDeck(deck), nil
}

// Update implements store.DeckStore.Update.
func (s *DeckStore) Update(ctx context.Context, deck domain.Deck) error {
	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.decks[deck.ID]; !ok {
		return store.ErrDeckNotFound
	}

	s.decks[deck.ID] = copyDeck(deck)
	return nil
}

// Delete implements store.DeckStore.Delete.
func (s *DeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.decks[id]; !ok {
		return store.ErrDeckNotFound
	}

	delete(s.decks, id)
	return nil
}

// List implements store.DeckStore.List.
func (s *DeckStore) List(ctx context.Context) ([]domain.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decks := make([]domain.Deck, 0, len(s.decks))
	for _, deck := range s.decks {
		decks = append(decks, copyDeck(deck))
	}

	sort.Slice(decks, func(i, j int) bool {
		return decks[i].CreatedAt.Before(decks[j].CreatedAt)
	})

	return decks, nil
}

// copyDeck returns a deep copy so the caller and the store never share
// the CardIDs slice.
func copyDeck(deck domain.Deck) domain.Deck {
	if deck.CardIDs != nil {
		ids := make([]uuid.UUID, len(deck.CardIDs))
		copy(ids, deck.CardIDs)
		deck.CardIDs = ids
	}
	return deck
}
