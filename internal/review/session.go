package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/domain/srs"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
)

// Session errors
var (
	// ErrInvalidTransition is returned when a session method is invoked
	// in a state that forbids it: revealing twice, grading before a
	// reveal, or doing anything to a completed session. This is a caller
	// bug and is never silently ignored; swallowing it would
	// desynchronize the caller's view of the session from its real state.
	ErrInvalidTransition = errors.New("invalid session state transition")

	// ErrNoCurrentCard is returned by Current when the session is
	// complete and no card remains to expose.
	ErrNoCurrentCard = errors.New("session has no current card")
)

// State identifies where a session is in its reveal/grade cycle.
type State string

// Possible session states
const (
	// StateAwaitingReveal means the current card's front is exposed and
	// its back is hidden. The only legal move is Reveal.
	StateAwaitingReveal State = "awaiting_reveal"

	// StateRevealed means the current card's back is exposed and the
	// session is waiting for a grade.
	StateRevealed State = "revealed"

	// StateComplete is terminal: the queue is exhausted. A fresh session
	// must be constructed to review again.
	StateComplete State = "complete"
)

// CardStore is the slice of the store the session needs: one read per
// queue candidate at construction and one replace-by-identifier write per
// graded card.
type CardStore interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Card, error)
	Put(ctx context.Context, card domain.Card) error
}

// Session walks a fixed queue of due cards through reveal/grade cycles.
//
// The queue is computed once at construction and never re-queried: cards
// that become due while the session runs are not added, and grading a
// card never changes any other card's position. Position only moves
// forward. Sessions are single-sitting objects: abandoning one is just
// discarding it, and grades already committed stay committed.
//
// Session is not safe for concurrent use. The application guarantees at
// most one live session per card store.
type Session struct {
	cards  CardStore
	clock  Clock
	logger *slog.Logger

	queue []uuid.UUID
	pos   int
	state State
}

// NewSession builds a session over the cards that are due now.
//
// A candidate ID joins the queue iff the store has the card and its due
// date is not after clock.Now() at construction time. IDs missing from
// the store are skipped rather than failing the session, so one dangling
// reference cannot abort review of the rest. Any other store error
// fails construction.
//
// An empty queue yields a session that is immediately Complete.
func NewSession(
	ctx context.Context,
	candidateIDs []uuid.UUID,
	cards CardStore,
	clock Clock,
	logger *slog.Logger,
) (*Session, error) {
	if cards == nil {
		panic("cards cannot be nil")
	}
	if clock == nil {
		panic("clock cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	now := clock.Now()
	queue := make([]uuid.UUID, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		card, err := cards.Get(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				logger.Warn("skipping card missing from store",
					slog.String("card_id", id.String()))
				continue
			}
			return nil, fmt.Errorf("failed to resolve card %s: %w", id, err)
		}

		if card.IsDue(now) {
			queue = append(queue, id)
		}
	}

	s := &Session{
		cards:  cards,
		clock:  clock,
		logger: logger.With(slog.String("component", "review_session")),
		queue:  queue,
		pos:    0,
		state:  StateAwaitingReveal,
	}

	if len(queue) == 0 {
		s.state = StateComplete
	}

	s.logger.Debug("review session created",
		slog.Int("candidates", len(candidateIDs)),
		slog.Int("due", len(queue)))

	return s, nil
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// Len returns the fixed length of the session's queue.
func (s *Session) Len() int {
	return len(s.queue)
}

// Position returns the 0-based index of the current card. Once the
// session is complete it equals Len.
func (s *Session) Position() int {
	return s.pos
}

// Revealed reports whether the current card's back is exposed.
func (s *Session) Revealed() bool {
	return s.state == StateRevealed
}

// Current returns the card at the session's position, freshly read from
// the store. Returns ErrNoCurrentCard once the session is complete.
func (s *Session) Current(ctx context.Context) (domain.Card, error) {
	if s.state == StateComplete {
		return domain.Card{}, ErrNoCurrentCard
	}

	card, err := s.cards.Get(ctx, s.queue[s.pos])
	if err != nil {
		return domain.Card{}, fmt.Errorf("failed to load current card: %w", err)
	}

	return card, nil
}

// Reveal exposes the current card's back. Legal only from
// AwaitingReveal; returns ErrInvalidTransition otherwise. No side
// effects beyond the state flag.
func (s *Session) Reveal() error {
	if s.state != StateAwaitingReveal {
		return fmt.Errorf("%w: reveal in state %q", ErrInvalidTransition, s.state)
	}

	s.state = StateRevealed
	return nil
}

// Grade records the user's recall quality for the current card. Legal
// only from Revealed; returns ErrInvalidTransition otherwise, with no
// store writes.
//
// On success it runs the scheduler on the current card, commits the
// rescheduled card to the store, and only then advances: the commit
// for card k strictly precedes exposing card k+1, and an abandoned
// session never leaves a graded card uncommitted. If the queue is
// exhausted the session becomes Complete; otherwise it returns to
// AwaitingReveal for the next card.
//
// An invalid grade propagates srs.ErrInvalidGrade without advancing or
// writing. A store failure leaves the session in Revealed so the grade
// can be resubmitted.
func (s *Session) Grade(ctx context.Context, grade srs.Grade) error {
	if s.state != StateRevealed {
		return fmt.Errorf("%w: grade in state %q", ErrInvalidTransition, s.state)
	}

	cardID := s.queue[s.pos]
	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		return fmt.Errorf("failed to load card for grading: %w", err)
	}

	updated, err := srs.Schedule(card, grade, s.clock.Now())
	if err != nil {
		return err
	}

	if err := s.cards.Put(ctx, updated); err != nil {
		return fmt.Errorf("failed to commit graded card: %w", err)
	}

	s.logger.Debug("card graded",
		slog.String("card_id", cardID.String()),
		slog.String("grade", grade.String()),
		slog.Int("interval", updated.Interval),
		slog.Int("repetition", updated.Repetition))

	s.pos++
	if s.pos == len(s.queue) {
		s.state = StateComplete
	} else {
		s.state = StateAwaitingReveal
	}

	return nil
}
