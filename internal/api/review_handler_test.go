package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giahuy0968/NoteSmart/internal/api"
	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/platform/memstore"
	"github.com/giahuy0968/NoteSmart/internal/service"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// newReviewRouter wires a review handler over a deck with n due cards.
func newReviewRouter(t *testing.T, n int) (chi.Router, domain.Deck) {
	t.Helper()

	decks := memstore.NewDeckStore()
	cards := memstore.NewCardStore()

	deck, err := domain.NewDeck("Review Deck")
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < n; i++ {
		card, err := domain.NewCard(deck.ID, uuid.New(), "front", "back", "because", domain.CardTypeQA)
		require.NoError(t, err)
		require.NoError(t, cards.Put(ctx, card))
		deck.CardIDs = append(deck.CardIDs, card.ID)
	}
	require.NoError(t, decks.Create(ctx, deck))

	clock := fixedClock{now: time.Now().UTC().Add(time.Hour)}
	svc := service.NewReviewService(decks, cards, clock, nil)
	handler := api.NewReviewHandler(svc, slog.Default())

	r := chi.NewRouter()
	r.Route("/review/session", func(r chi.Router) {
		r.Post("/", handler.StartSession)
		r.Get("/", handler.GetStatus)
		r.Delete("/", handler.AbandonSession)
		r.Get("/card", handler.GetCurrentCard)
		r.Post("/reveal", handler.Reveal)
		r.Post("/grade", handler.Grade)
	})
	return r, deck
}

func startSession(t *testing.T, router http.Handler, deckID string) api.SessionStatusResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/review/session", api.StartSessionRequest{DeckID: deckID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var status api.SessionStatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	return status
}

func TestReviewHandler_StartSession(t *testing.T) {
	t.Parallel()
	router, deck := newReviewRouter(t, 2)

	status := startSession(t, router, deck.ID.String())
	assert.Equal(t, "awaiting_reveal", status.State)
	assert.Equal(t, 0, status.Position)
	assert.Equal(t, 2, status.Total)
}

func TestReviewHandler_StartSession_DeckNotFound(t *testing.T) {
	t.Parallel()
	router, _ := newReviewRouter(t, 1)

	rec := doJSON(t, router, http.MethodPost, "/review/session", api.StartSessionRequest{DeckID: uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewHandler_StartSession_Conflict(t *testing.T) {
	t.Parallel()
	router, deck := newReviewRouter(t, 2)

	startSession(t, router, deck.ID.String())

	rec := doJSON(t, router, http.MethodPost, "/review/session", api.StartSessionRequest{DeckID: deck.ID.String()})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReviewHandler_StatusWithoutSession(t *testing.T) {
	t.Parallel()
	router, _ := newReviewRouter(t, 1)

	rec := doJSON(t, router, http.MethodGet, "/review/session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewHandler_CurrentCardHidesBackUntilReveal(t *testing.T) {
	t.Parallel()
	router, deck := newReviewRouter(t, 1)

	startSession(t, router, deck.ID.String())

	rec := doJSON(t, router, http.MethodGet, "/review/session/card", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var card api.CurrentCardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&card))
	assert.Equal(t, "front", card.Front)
	assert.Empty(t, card.Back)
	assert.Empty(t, card.Explanation)
	assert.False(t, card.Revealed)

	rec = doJSON(t, router, http.MethodPost, "/review/session/reveal", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&card))
	assert.Equal(t, "back", card.Back)
	assert.Equal(t, "because", card.Explanation)
	assert.True(t, card.Revealed)
}

func TestReviewHandler_GradeBeforeRevealConflicts(t *testing.T) {
	t.Parallel()
	router, deck := newReviewRouter(t, 1)

	startSession(t, router, deck.ID.String())

	rec := doJSON(t, router, http.MethodPost, "/review/session/grade", api.GradeRequest{Grade: 2})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReviewHandler_GradeOutOfRange(t *testing.T) {
	t.Parallel()
	router, deck := newReviewRouter(t, 1)

	startSession(t, router, deck.ID.String())
	rec := doJSON(t, router, http.MethodPost, "/review/session/reveal", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/review/session/grade", api.GradeRequest{Grade: 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewHandler_FullSession(t *testing.T) {
	t.Parallel()
	router, deck := newReviewRouter(t, 2)

	startSession(t, router, deck.ID.String())

	// First card: reveal then grade good.
	rec := doJSON(t, router, http.MethodPost, "/review/session/reveal", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/review/session/grade", api.GradeRequest{Grade: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	var status api.SessionStatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "awaiting_reveal", status.State)
	assert.Equal(t, 1, status.Position)

	// Second card: reveal then grade easy, completing the session.
	rec = doJSON(t, router, http.MethodPost, "/review/session/reveal", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/review/session/grade", api.GradeRequest{Grade: 3})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "complete", status.State)

	// A complete session has no current card.
	rec = doJSON(t, router, http.MethodGet, "/review/session/card", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReviewHandler_Abandon(t *testing.T) {
	t.Parallel()
	router, deck := newReviewRouter(t, 1)

	startSession(t, router, deck.ID.String())

	rec := doJSON(t, router, http.MethodDelete, "/review/session", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/review/session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Abandoning again without a session is a 404.
	rec = doJSON(t, router, http.MethodDelete, "/review/session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
