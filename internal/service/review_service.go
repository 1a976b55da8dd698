package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/domain/srs"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/review"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
)

// SessionStatus is a snapshot of the active session's progress.
type SessionStatus struct {
	State    review.State `json:"state"`
	Position int          `json:"position"`
	Total    int          `json:"total"`
}

// ReviewService owns the review-session lifecycle. It enforces the
// application-wide invariant that at most one live session operates over
// the card store at a time; starting a second session while one is in
// progress fails with ErrSessionActive. A session that has run to
// completion no longer blocks a new one.
type ReviewService interface {
	// StartSession builds a session over the deck's cards that are due
	// now and makes it the active session.
	// Returns store.ErrDeckNotFound if the deck does not exist and
	// ErrSessionActive if a live session already exists.
	StartSession(ctx context.Context, deckID uuid.UUID) (SessionStatus, error)

	// Status reports the active session's progress.
	// Returns ErrNoSession if no session exists.
	Status(ctx context.Context) (SessionStatus, error)

	// CurrentCard returns the card under review and whether its back is
	// revealed. Returns ErrNoSession if no session exists and
	// review.ErrNoCurrentCard once the session is complete.
	CurrentCard(ctx context.Context) (domain.Card, bool, error)

	// Reveal exposes the current card's back.
	// Returns ErrNoSession if no session exists; propagates
	// review.ErrInvalidTransition.
	Reveal(ctx context.Context) error

	// Grade records recall quality for the current card, committing the
	// rescheduled card before advancing. Returns ErrNoSession if no
	// session exists; propagates review.ErrInvalidTransition and
	// srs.ErrInvalidGrade.
	Grade(ctx context.Context, grade srs.Grade) (SessionStatus, error)

	// Abandon discards the active session. Cards already graded stay
	// committed; nothing is rolled back. Returns ErrNoSession if no
	// session exists.
	Abandon(ctx context.Context) error
}

// Verify interface compliance at compile time
var _ ReviewService = (*reviewService)(nil)

type reviewService struct {
	decks  store.DeckStore
	cards  store.CardStore
	clock  review.Clock
	logger *slog.Logger

	mu      sync.Mutex
	session *review.Session
}

// NewReviewService creates a ReviewService over the given stores and clock.
func NewReviewService(
	decks store.DeckStore,
	cards store.CardStore,
	clock review.Clock,
	log *slog.Logger,
) ReviewService {
	if decks == nil {
		panic("decks store cannot be nil")
	}
	if cards == nil {
		panic("cards store cannot be nil")
	}
	if clock == nil {
		clock = review.SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}

	return &reviewService{
		decks:  decks,
		cards:  cards,
		clock:  clock,
		logger: log.With(slog.String("component", "review_service")),
	}
}

func (s *reviewService) StartSession(ctx context.Context, deckID uuid.UUID) (SessionStatus, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && s.session.State() != review.StateComplete {
		return SessionStatus{}, ErrSessionActive
	}

	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return SessionStatus{}, err
	}

	session, err := review.NewSession(ctx, deck.CardIDs, s.cards, s.clock, s.logger)
	if err != nil {
		return SessionStatus{}, err
	}

	s.session = session

	log.Info("review session started",
		slog.String("deck_id", deckID.String()),
		slog.Int("due_cards", session.Len()))

	return statusOf(session), nil
}

func (s *reviewService) Status(ctx context.Context) (SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return SessionStatus{}, ErrNoSession
	}

	return statusOf(s.session), nil
}

func (s *reviewService) CurrentCard(ctx context.Context) (domain.Card, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.Card{}, false, ErrNoSession
	}

	card, err := s.session.Current(ctx)
	if err != nil {
		return domain.Card{}, false, err
	}

	return card, s.session.Revealed(), nil
}

func (s *reviewService) Reveal(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoSession
	}

	return s.session.Reveal()
}

func (s *reviewService) Grade(ctx context.Context, grade srs.Grade) (SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return SessionStatus{}, ErrNoSession
	}

	if err := s.session.Grade(ctx, grade); err != nil {
		return SessionStatus{}, err
	}

	return statusOf(s.session), nil
}

func (s *reviewService) Abandon(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoSession
	}

	log.Info("review session abandoned",
		slog.Int("position", s.session.Position()),
		slog.Int("total", s.session.Len()))

	s.session = nil
	return nil
}

func statusOf(session *review.Session) SessionStatus {
	return SessionStatus{
		State:    session.State(),
		Position: session.Position(),
		Total:    session.Len(),
	}
}
