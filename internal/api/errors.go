package api

import (
	"errors"
	"net/http"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/domain/srs"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"github.com/giahuy0968/NoteSmart/internal/review"
	"github.com/giahuy0968/NoteSmart/internal/service"
	"github.com/giahuy0968/NoteSmart/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNoteNotFound),
		errors.Is(err, store.ErrDeckNotFound),
		errors.Is(err, store.ErrCardNotFound),
		errors.Is(err, service.ErrNoSession):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrSessionActive),
		errors.Is(err, review.ErrInvalidTransition),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, srs.ErrInvalidGrade),
		errors.Is(err, generation.ErrEmptyInput),
		errors.Is(err, generation.ErrInvalidStyle),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Upstream model failures
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	// Special cases
	case errors.Is(err, review.ErrNoCurrentCard):
		return http.StatusNoContent

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrNoteNotFound):
		return "Note not found"

	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, service.ErrNoSession):
		return "No review session in progress"

	// Conflict errors
	case errors.Is(err, service.ErrSessionActive):
		return "A review session is already active"

	case errors.Is(err, review.ErrInvalidTransition):
		return "Operation not allowed in the session's current state"

	case errors.Is(err, store.ErrDuplicate):
		return "Entity already exists"

	// Bad request errors
	case errors.Is(err, srs.ErrInvalidGrade):
		return "Invalid review grade"

	case errors.Is(err, generation.ErrEmptyInput):
		return "Input text cannot be empty"

	case errors.Is(err, generation.ErrInvalidStyle):
		return "Style must be one of simple, detailed, academic"

	case isDomainValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	// Upstream model failures
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Card generation service is unavailable"

	// No current card is handled separately with StatusNoContent

	default:
		return "An unexpected error occurred"
	}
}

// isDomainValidationError reports whether the error is one of the
// entity-level validation sentinels. Their messages name only the field
// at fault, so they are safe to return to clients verbatim.
func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrNoteIDEmpty,
		domain.ErrNoteTitleEmpty,
		domain.ErrNoteContentEmpty,
		domain.ErrDeckIDEmpty,
		domain.ErrDeckNameEmpty,
		domain.ErrCardIDEmpty,
		domain.ErrCardDeckIDEmpty,
		domain.ErrCardFrontEmpty,
		domain.ErrCardBackEmpty,
		domain.ErrInvalidCardType,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
