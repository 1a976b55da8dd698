package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/giahuy0968/NoteSmart/internal/api"
	apiMiddleware "github.com/giahuy0968/NoteSmart/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	noteHandler := api.NewNoteHandler(app.noteService, app.logger)
	deckHandler := api.NewDeckHandler(app.deckService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.generationService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	assistHandler := api.NewAssistHandler(app.assistService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Note endpoints
		r.Post("/notes", noteHandler.CreateNote)
		r.Get("/notes", noteHandler.ListNotes)
		r.Get("/notes/{id}", noteHandler.GetNote)
		r.Put("/notes/{id}", noteHandler.UpdateNote)
		r.Delete("/notes/{id}", noteHandler.DeleteNote)

		// Deck endpoints
		r.Post("/decks", deckHandler.CreateDeck)
		r.Get("/decks", deckHandler.ListDecks)
		r.Get("/decks/{id}", deckHandler.GetDeck)
		r.Get("/decks/{id}/cards", deckHandler.ListDeckCards)
		r.Delete("/decks/{id}", deckHandler.DeleteDeck)

		// Card endpoints
		r.Post("/cards", cardHandler.CreateCard)
		r.Post("/cards/generate", cardHandler.GenerateCards)
		r.Get("/cards/{id}", cardHandler.GetCard)
		r.Put("/cards/{id}", cardHandler.EditCard)
		r.Delete("/cards/{id}", cardHandler.DeleteCard)

		// Review session endpoints
		r.Post("/review/session", reviewHandler.StartSession)
		r.Get("/review/session", reviewHandler.GetStatus)
		r.Delete("/review/session", reviewHandler.AbandonSession)
		r.Get("/review/session/card", reviewHandler.GetCurrentCard)
		r.Post("/review/session/reveal", reviewHandler.Reveal)
		r.Post("/review/session/grade", reviewHandler.Grade)

		// Assist endpoints
		r.Post("/assist/query", assistHandler.Query)
		r.Post("/assist/explain", assistHandler.Explain)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
