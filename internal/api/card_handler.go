package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/giahuy0968/NoteSmart/internal/api/shared"
	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/service"
)

// CardHandler handles card-related HTTP requests, both manual card
// management and note-to-card generation.
type CardHandler struct {
	cardService       service.CardService
	generationService service.GenerationService
	logger            *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(
	cardService service.CardService,
	generationService service.GenerationService,
	logger *slog.Logger,
) *CardHandler {
	if cardService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardService cannot be nil for CardHandler")
	}
	if generationService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("generationService cannot be nil for CardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService:       cardService,
		generationService: generationService,
		logger:            logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /cards requests
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck ID, front, back, and a valid card type are required")
		return
	}

	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid deck ID format")
		return
	}

	sourceNoteID := uuid.Nil
	if req.SourceNoteID != "" {
		sourceNoteID, err = uuid.Parse(req.SourceNoteID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid source note ID format")
			return
		}
	}

	cardType, err := domain.ParseCardType(req.CardType)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card type")
		return
	}

	card, err := h.cardService.CreateCard(
		r.Context(), deckID, sourceNoteID,
		req.Front, req.Back, req.Explanation, cardType,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", deckID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// GetCard handles GET /cards/{id} requests
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, log)
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// EditCard handles PUT /cards/{id} requests. Only content fields change;
// the card's scheduling state is preserved.
func (h *CardHandler) EditCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, log)
	if !ok {
		return
	}

	var req EditCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Front and back are required")
		return
	}

	card, err := h.cardService.EditCard(r.Context(), id, req.Front, req.Back, req.Explanation)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card edited", slog.String("card_id", card.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// DeleteCard handles DELETE /cards/{id} requests
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, log)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card deleted", slog.String("card_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GenerateCards handles POST /cards/generate requests. It derives fresh
// flashcards from a note's content and stores them into the target deck.
func (h *CardHandler) GenerateCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateCardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Note ID and deck ID are required")
		return
	}

	noteID, err := uuid.Parse(req.NoteID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid note ID format")
		return
	}

	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid deck ID format")
		return
	}

	cards, err := h.generationService.GenerateCards(r.Context(), noteID, deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, cardToResponse(card))
	}

	log.Debug("cards generated",
		slog.String("note_id", noteID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(responses)))
	shared.RespondWithJSON(w, r, http.StatusCreated, responses)
}
