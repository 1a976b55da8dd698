package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/domain/srs"
	"github.com/giahuy0968/NoteSmart/internal/platform/memstore"
	"github.com/giahuy0968/NoteSmart/internal/review"
	"github.com/giahuy0968/NoteSmart/internal/service"
	"github.com/giahuy0968/NoteSmart/internal/store"
)

// fixedClock returns a constant time, so tests control what "due" means.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// seedDeck creates a deck with n cards, all due immediately.
func seedDeck(t *testing.T, decks *memstore.DeckStore, cards *memstore.CardStore, n int) domain.Deck {
	t.Helper()
	ctx := context.Background()

	deck, err := domain.NewDeck("Test Deck")
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		card, err := domain.NewCard(deck.ID, uuid.New(), "front", "back", "", domain.CardTypeQA)
		require.NoError(t, err)
		require.NoError(t, cards.Put(ctx, card))
		deck.CardIDs = append(deck.CardIDs, card.ID)
	}

	require.NoError(t, decks.Create(ctx, deck))
	return deck
}

func newReviewFixture(t *testing.T, n int) (service.ReviewService, domain.Deck, *memstore.CardStore) {
	t.Helper()

	decks := memstore.NewDeckStore()
	cards := memstore.NewCardStore()
	deck := seedDeck(t, decks, cards, n)

	clock := fixedClock{now: time.Now().UTC().Add(time.Hour)}
	svc := service.NewReviewService(decks, cards, clock, nil)
	return svc, deck, cards
}

func TestReviewService_StartSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, deck, _ := newReviewFixture(t, 2)

	status, err := svc.StartSession(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, review.StateAwaitingReveal, status.State)
	assert.Equal(t, 0, status.Position)
	assert.Equal(t, 2, status.Total)
}

func TestReviewService_StartSession_DeckNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newReviewFixture(t, 1)

	_, err := svc.StartSession(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrDeckNotFound)
}

func TestReviewService_StartSession_GuardsLiveSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, deck, _ := newReviewFixture(t, 2)

	_, err := svc.StartSession(ctx, deck.ID)
	require.NoError(t, err)

	// A second start while the first session is live must be rejected.
	_, err = svc.StartSession(ctx, deck.ID)
	assert.ErrorIs(t, err, service.ErrSessionActive)

	// The original session is unaffected by the rejected start.
	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, review.StateAwaitingReveal, status.State)
	assert.Equal(t, 0, status.Position)
}

func TestReviewService_StartSession_CompleteSessionReplaceable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, deck, _ := newReviewFixture(t, 1)

	_, err := svc.StartSession(ctx, deck.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Reveal(ctx))
	status, err := svc.Grade(ctx, srs.GradeGood)
	require.NoError(t, err)
	require.Equal(t, review.StateComplete, status.State)

	// A completed session no longer blocks a new one. The graded card is
	// no longer due, so the new session is empty and starts Complete.
	status, err = svc.StartSession(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, review.StateComplete, status.State)
	assert.Equal(t, 0, status.Total)
}

func TestReviewService_NoSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newReviewFixture(t, 1)

	_, err := svc.Status(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)

	_, _, err = svc.CurrentCard(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)

	err = svc.Reveal(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)

	_, err = svc.Grade(ctx, srs.GradeGood)
	assert.ErrorIs(t, err, service.ErrNoSession)

	err = svc.Abandon(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)
}

func TestReviewService_Lifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, deck, cards := newReviewFixture(t, 2)

	_, err := svc.StartSession(ctx, deck.ID)
	require.NoError(t, err)

	first, revealed, err := svc.CurrentCard(ctx)
	require.NoError(t, err)
	assert.False(t, revealed)

	// Grading before reveal is an invalid transition.
	_, err = svc.Grade(ctx, srs.GradeGood)
	assert.ErrorIs(t, err, review.ErrInvalidTransition)

	require.NoError(t, svc.Reveal(ctx))

	_, revealed, err = svc.CurrentCard(ctx)
	require.NoError(t, err)
	assert.True(t, revealed)

	status, err := svc.Grade(ctx, srs.GradeGood)
	require.NoError(t, err)
	assert.Equal(t, review.StateAwaitingReveal, status.State)
	assert.Equal(t, 1, status.Position)

	// The graded card was committed through the store.
	stored, err := cards.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Repetition)
	assert.Equal(t, 1, stored.Interval)

	require.NoError(t, svc.Reveal(ctx))
	status, err = svc.Grade(ctx, srs.GradeEasy)
	require.NoError(t, err)
	assert.Equal(t, review.StateComplete, status.State)

	_, _, err = svc.CurrentCard(ctx)
	assert.ErrorIs(t, err, review.ErrNoCurrentCard)
}

func TestReviewService_Abandon_KeepsCommittedGrades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, deck, cards := newReviewFixture(t, 2)

	_, err := svc.StartSession(ctx, deck.ID)
	require.NoError(t, err)

	graded, _, err := svc.CurrentCard(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Reveal(ctx))
	_, err = svc.Grade(ctx, srs.GradeGood)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx))

	// Abandon discards the session but never rolls back grades.
	stored, err := cards.Get(ctx, graded.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Repetition)

	_, err = svc.Status(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)

	// After abandoning, a new session can start.
	_, err = svc.StartSession(ctx, deck.ID)
	assert.NoError(t, err)
}

func TestReviewService_InvalidGradeDoesNotAdvance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, deck, _ := newReviewFixture(t, 1)

	_, err := svc.StartSession(ctx, deck.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Reveal(ctx))

	_, err = svc.Grade(ctx, srs.Grade(7))
	assert.ErrorIs(t, err, srs.ErrInvalidGrade)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, review.StateRevealed, status.State)
	assert.Equal(t, 0, status.Position)
}
