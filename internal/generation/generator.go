package generation

import (
	"context"
	"strings"

	"github.com/giahuy0968/NoteSmart/internal/domain"
)

// CardDraft is a flashcard candidate produced by a generator, before it
// is attached to a deck and given scheduling state.
type CardDraft struct {
	Front       string          `json:"front"`
	Back        string          `json:"back"`
	Explanation string          `json:"explanation,omitempty"`
	CardType    domain.CardType `json:"card_type"`
}

// Generator defines the interface for deriving flashcard drafts from
// note text. This boundary keeps the application core independent of any
// specific AI/LLM service.
type Generator interface {
	// GenerateCards produces flashcard drafts from the provided note text.
	// Returns ErrEmptyInput if the text is empty, ErrInvalidResponse if
	// the service's output cannot be parsed, or ErrGenerationFailed for
	// any other failure. There is no retry policy at this boundary.
	GenerateCards(ctx context.Context, noteText string) ([]CardDraft, error)
}

// Answerer defines the interface for answering a free-text query against
// a set of note snippets retrieved as context.
type Answerer interface {
	// Answer produces a textual answer to the query grounded in the
	// given snippets. Returns ErrEmptyInput if the query is empty.
	Answer(ctx context.Context, query string, snippets []string) (string, error)
}

// ExplainStyle selects the register an explanation is written in.
type ExplainStyle string

const (
	// StyleSimple asks for plain language a newcomer can follow.
	StyleSimple ExplainStyle = "simple"

	// StyleDetailed asks for a thorough walkthrough of the material.
	StyleDetailed ExplainStyle = "detailed"

	// StyleAcademic asks for formal register with precise terminology.
	StyleAcademic ExplainStyle = "academic"
)

// ParseExplainStyle converts a string to an ExplainStyle,
// case-insensitively. Returns ErrInvalidStyle for anything outside the
// three known styles.
func ParseExplainStyle(s string) (ExplainStyle, error) {
	switch ExplainStyle(strings.ToLower(s)) {
	case StyleSimple:
		return StyleSimple, nil
	case StyleDetailed:
		return StyleDetailed, nil
	case StyleAcademic:
		return StyleAcademic, nil
	default:
		return "", ErrInvalidStyle
	}
}

// Explainer defines the interface for producing a standalone explanation
// of arbitrary pasted text, independent of stored notes.
type Explainer interface {
	// Explain produces a markdown explanation of the text in the given
	// style. Returns ErrEmptyInput if the text is empty and
	// ErrInvalidStyle for an unknown style.
	Explain(ctx context.Context, text string, style ExplainStyle) (string, error)
}
