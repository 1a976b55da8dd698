package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/giahuy0968/NoteSmart/internal/api/shared"
	"github.com/giahuy0968/NoteSmart/internal/domain/srs"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/review"
	"github.com/giahuy0968/NoteSmart/internal/service"
)

// ReviewHandler handles review-session HTTP requests. All endpoints
// operate on the single active session owned by the review service.
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviewService cannot be nil for ReviewHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "review_handler")),
	}
}

// StartSession handles POST /review/session requests
func (h *ReviewHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck ID is required")
		return
	}

	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid deck ID format")
		return
	}

	status, err := h.reviewService.StartSession(r.Context(), deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review session started",
		slog.String("deck_id", deckID.String()),
		slog.Int("due_cards", status.Total))
	shared.RespondWithJSON(w, r, http.StatusCreated, sessionStatusToResponse(status))
}

// GetStatus handles GET /review/session requests
func (h *ReviewHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.reviewService.Status(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionStatusToResponse(status))
}

// GetCurrentCard handles GET /review/session/card requests.
// Returns 204 No Content when the session is complete.
func (h *ReviewHandler) GetCurrentCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	card, revealed, err := h.reviewService.CurrentCard(r.Context())
	if errors.Is(err, review.ErrNoCurrentCard) {
		log.Debug("session complete, no current card")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, currentCardToResponse(card, revealed))
}

// Reveal handles POST /review/session/reveal requests
func (h *ReviewHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := h.reviewService.Reveal(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	card, revealed, err := h.reviewService.CurrentCard(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card revealed", slog.String("card_id", card.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, currentCardToResponse(card, revealed))
}

// Grade handles POST /review/session/grade requests. The card is
// rescheduled and committed before the session advances.
func (h *ReviewHandler) Grade(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GradeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	grade, err := srs.ParseGrade(req.Grade)
	if err != nil {
		log.Warn("invalid grade value", slog.Int("grade", req.Grade))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Grade must be between 0 and 3")
		return
	}

	status, err := h.reviewService.Grade(r.Context(), grade)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card graded",
		slog.Int("grade", req.Grade),
		slog.String("state", string(status.State)),
		slog.Int("position", status.Position))
	shared.RespondWithJSON(w, r, http.StatusOK, sessionStatusToResponse(status))
}

// AbandonSession handles DELETE /review/session requests
func (h *ReviewHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := h.reviewService.Abandon(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review session abandoned")
	w.WriteHeader(http.StatusNoContent)
}
