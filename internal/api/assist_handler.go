package api

import (
	"log/slog"
	"net/http"

	"github.com/giahuy0968/NoteSmart/internal/api/shared"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"github.com/giahuy0968/NoteSmart/internal/platform/logger"
	"github.com/giahuy0968/NoteSmart/internal/service"
)

// AssistHandler handles contextual-query HTTP requests
type AssistHandler struct {
	assistService service.AssistService
	logger        *slog.Logger
}

// NewAssistHandler creates a new AssistHandler
func NewAssistHandler(assistService service.AssistService, logger *slog.Logger) *AssistHandler {
	if assistService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("assistService cannot be nil for AssistHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AssistHandler")
	}

	return &AssistHandler{
		assistService: assistService,
		logger:        logger.With(slog.String("component", "assist_handler")),
	}
}

// Query handles POST /assist/query requests. It answers the question
// using the most relevant stored notes as context.
func (h *AssistHandler) Query(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AssistRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Query is required")
		return
	}

	answer, err := h.assistService.Query(r.Context(), req.Query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("query answered", slog.Int("sources", len(answer.Sources)))
	shared.RespondWithJSON(w, r, http.StatusOK, assistToResponse(answer))
}

// Explain handles POST /assist/explain requests. It produces a markdown
// explanation of the submitted text in one of three styles: simple,
// detailed, or academic.
func (h *AssistHandler) Explain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ExplainRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Text and a style of simple, detailed, or academic are required")
		return
	}

	style, err := generation.ParseExplainStyle(req.Style)
	if err != nil {
		log.Warn("invalid explanation style", slog.String("style", req.Style))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Style must be one of simple, detailed, academic")
		return
	}

	explanation, err := h.assistService.Explain(r.Context(), req.Text, style)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("text explained", slog.String("style", string(style)))
	shared.RespondWithJSON(w, r, http.StatusOK, ExplainResponse{
		Explanation: explanation,
		Style:       string(style),
	})
}
