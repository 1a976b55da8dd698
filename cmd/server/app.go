package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/giahuy0968/NoteSmart/internal/config"
	"github.com/giahuy0968/NoteSmart/internal/platform/gemini"
	"github.com/giahuy0968/NoteSmart/internal/platform/memstore"
	"github.com/giahuy0968/NoteSmart/internal/review"
	"github.com/giahuy0968/NoteSmart/internal/service"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	noteService       service.NoteService
	deckService       service.DeckService
	cardService       service.CardService
	generationService service.GenerationService
	assistService     service.AssistService
	reviewService     service.ReviewService
}

// newApplication builds the full dependency graph: stores, the language
// model client, and the service layer on top of them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	noteStore := memstore.NewNoteStore()
	deckStore := memstore.NewDeckStore()
	cardStore := memstore.NewCardStore()

	geminiClient, err := gemini.NewClient(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	clock := review.SystemClock{}

	app := &application{
		config: cfg,
		logger: logger,

		noteService: service.NewNoteService(noteStore, logger),
		deckService: service.NewDeckService(deckStore, cardStore, logger),
		cardService: service.NewCardService(deckStore, cardStore, logger),
		generationService: service.NewGenerationService(
			noteStore, deckStore, cardStore, geminiClient, logger,
		),
		assistService: service.NewAssistService(noteStore, geminiClient, geminiClient, logger),
		reviewService: service.NewReviewService(deckStore, cardStore, clock, logger),
	}

	return app, nil
}

// cleanup releases application resources on shutdown. The in-memory
// stores need no teardown; the hook exists for future persistent backends.
func (app *application) cleanup() {
	app.logger.Debug("application cleanup complete")
}
