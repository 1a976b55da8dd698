package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// maxAssistSources caps how many notes are fed to the answerer as context.
const maxAssistSources = 3

// snippetLength is the number of characters of note content quoted back
// as a source snippet.
const snippetLength = 200

// Source points at a note that contributed context to an answer.
type Source struct {
	NoteID  uuid.UUID `json:"note_id"`
	Title   string    `json:"title"`
	Snippet string    `json:"snippet"`
}

// Answer is the result of a contextual query: the answer text plus the
// notes it was grounded in.
type Answer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// AssistService answers free-text questions against the user's notes
// and explains arbitrary pasted text. Query relevance is plain keyword
// matching over in-memory note text; the matched notes become the
// context for the answerer. Explanations take their input verbatim and
// do not touch the note store.
type AssistService interface {
	// Query answers the question using the most relevant notes as
	// context. Returns generation.ErrEmptyInput for a blank query. A
	// query matching no notes still gets an answer, with empty sources.
	Query(ctx context.Context, query string) (Answer, error)

	// Explain produces a markdown explanation of the text in the given
	// style. Returns generation.ErrEmptyInput for blank text and
	// generation.ErrInvalidStyle for a style outside the known three.
	Explain(ctx context.Context, text string, style generation.ExplainStyle) (string, error)
}

// Verify interface compliance at compile time
var _ AssistService = (*assistService)(nil)

type assistService struct {
	notes     store.NoteStore
	answerer  generation.Answerer
	explainer generation.Explainer
	logger    *slog.Logger
}

// NewAssistService creates an AssistService over the given note store,
// answerer, and explainer.
func NewAssistService(
	notes store.NoteStore,
	answerer generation.Answerer,
	explainer generation.Explainer,
	log *slog.Logger,
) AssistService {
	if notes == nil {
		panic("notes store cannot be nil")
	}
	if answerer == nil {
		panic("answerer cannot be nil")
	}
	if explainer == nil {
		panic("explainer cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &assistService{
		notes:     notes,
		answerer:  answerer,
		explainer: explainer,
		logger:    log.With(slog.String("component", "assist_service")),
	}
}

func (s *assistService) Query(ctx context.Context, query string) (Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(query) == "" {
		return Answer{}, generation.ErrEmptyInput
	}

	notes, err := s.notes.List(ctx)
	if err != nil {
		return Answer{}, err
	}

	relevant := rankNotes(notes, query, maxAssistSources)
	snippets := lo.Map(relevant, func(n domain.Note, _ int) string {
		return n.Title + ": " + n.Content
	})

	text, err := s.answerer.Answer(ctx, query, snippets)
	if err != nil {
		log.Error("contextual answer failed", slog.String("error", err.Error()))
		return Answer{}, err
	}

	sources := lo.Map(relevant, func(n domain.Note, _ int) Source {
		return Source{
			NoteID:  n.ID,
			Title:   n.Title,
			Snippet: snippet(n.Content),
		}
	})

	log.Debug("query answered",
		slog.Int("sources", len(sources)),
		slog.Int("notes_searched", len(notes)))

	return Answer{Text: text, Sources: sources}, nil
}

func (s *assistService) Explain(
	ctx context.Context,
	text string,
	style generation.ExplainStyle,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyInput
	}

	explanation, err := s.explainer.Explain(ctx, text, style)
	if err != nil {
		log.Error("explanation failed",
			slog.String("style", string(style)),
			slog.String("error", err.Error()))
		return "", err
	}

	log.Debug("text explained",
		slog.String("style", string(style)),
		slog.Int("text_length", len(text)))

	return explanation, nil
}

// rankNotes scores notes by keyword overlap with the query and returns
// the top max matches, best first. Notes with no overlap are excluded.
func rankNotes(notes []domain.Note, query string, max int) []domain.Note {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return nil
	}

	type scored struct {
		note  domain.Note
		score int
	}

	matches := make([]scored, 0, len(notes))
	for _, note := range notes {
		haystack := strings.ToLower(note.Title + " " + note.Content + " " + strings.Join(note.Tags, " "))

		score := 0
		for _, kw := range keywords {
			score += strings.Count(haystack, kw)
		}
		if score > 0 {
			matches = append(matches, scored{note: note, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > max {
		matches = matches[:max]
	}

	return lo.Map(matches, func(m scored, _ int) domain.Note {
		return m.note
	})
}

// snippet trims note content to a displayable excerpt. Truncation is at
// a rune boundary so multi-byte content never yields invalid UTF-8.
func snippet(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return strings.TrimSpace(string(runes[:snippetLength])) + "…"
}
