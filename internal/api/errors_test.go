package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/domain/srs"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"github.com/giahuy0968/NoteSmart/internal/review"
	"github.com/giahuy0968/NoteSmart/internal/service"
	"github.com/giahuy0968/NoteSmart/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"note not found", store.ErrNoteNotFound, http.StatusNotFound},
		{"deck not found", store.ErrDeckNotFound, http.StatusNotFound},
		{"card not found", store.ErrCardNotFound, http.StatusNotFound},
		{"no session", service.ErrNoSession, http.StatusNotFound},
		{"session active", service.ErrSessionActive, http.StatusConflict},
		{"invalid transition", review.ErrInvalidTransition, http.StatusConflict},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{"invalid grade", srs.ErrInvalidGrade, http.StatusBadRequest},
		{"empty input", generation.ErrEmptyInput, http.StatusBadRequest},
		{"invalid explain style", generation.ErrInvalidStyle, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"empty note title", domain.ErrNoteTitleEmpty, http.StatusBadRequest},
		{"empty card front", domain.ErrCardFrontEmpty, http.StatusBadRequest},
		{"generation failed", generation.ErrGenerationFailed, http.StatusBadGateway},
		{"invalid model response", generation.ErrInvalidResponse, http.StatusBadGateway},
		{"no current card", review.ErrNoCurrentCard, http.StatusNoContent},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCode_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("failed to get deck: %w", store.ErrDeckNotFound)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))

	doubleWrapped := fmt.Errorf("start session: %w", fmt.Errorf("guard: %w", service.ErrSessionActive))
	assert.Equal(t, http.StatusConflict, MapErrorToStatusCode(doubleWrapped))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"note not found", store.ErrNoteNotFound, "Note not found"},
		{"deck not found", store.ErrDeckNotFound, "Deck not found"},
		{"card not found", store.ErrCardNotFound, "Card not found"},
		{"no session", service.ErrNoSession, "No review session in progress"},
		{"session active", service.ErrSessionActive, "A review session is already active"},
		{"invalid grade", srs.ErrInvalidGrade, "Invalid review grade"},
		{"invalid explain style", generation.ErrInvalidStyle, "Style must be one of simple, detailed, academic"},
		{"generation failed", generation.ErrGenerationFailed, "Card generation service is unavailable"},
		{"unknown error", errors.New("pq: connection refused"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverLeaksInternals(t *testing.T) {
	t.Parallel()

	// An arbitrary wrapped internal error must not surface its text.
	internal := fmt.Errorf("dial tcp 10.0.0.5:5432: %w", errors.New("connection refused"))
	msg := GetSafeErrorMessage(internal)
	assert.NotContains(t, msg, "10.0.0.5")
	assert.NotContains(t, msg, "connection refused")
}
