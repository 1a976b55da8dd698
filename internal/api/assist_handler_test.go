package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giahuy0968/NoteSmart/internal/api"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"github.com/giahuy0968/NoteSmart/internal/service"
)

// stubAssistService returns canned results and records the inputs.
type stubAssistService struct {
	answer      service.Answer
	explanation string
	err         error

	gotQuery string
	gotText  string
	gotStyle generation.ExplainStyle
}

func (s *stubAssistService) Query(ctx context.Context, query string) (service.Answer, error) {
	s.gotQuery = query
	if s.err != nil {
		return service.Answer{}, s.err
	}
	return s.answer, nil
}

func (s *stubAssistService) Explain(ctx context.Context, text string, style generation.ExplainStyle) (string, error) {
	s.gotText = text
	s.gotStyle = style
	if s.err != nil {
		return "", s.err
	}
	return s.explanation, nil
}

func newAssistRouter(t *testing.T, stub *stubAssistService) chi.Router {
	t.Helper()

	handler := api.NewAssistHandler(stub, slog.Default())

	r := chi.NewRouter()
	r.Post("/assist/query", handler.Query)
	r.Post("/assist/explain", handler.Explain)
	return r
}

func TestAssistHandler_Query(t *testing.T) {
	t.Parallel()

	stub := &stubAssistService{answer: service.Answer{Text: "Mitochondria produce ATP."}}
	router := newAssistRouter(t, stub)

	rec := doJSON(t, router, http.MethodPost, "/assist/query", api.AssistRequest{Query: "what do mitochondria do"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.AssistResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Mitochondria produce ATP.", resp.Answer)
	assert.Equal(t, "what do mitochondria do", stub.gotQuery)
}

func TestAssistHandler_Query_MissingQuery(t *testing.T) {
	t.Parallel()

	router := newAssistRouter(t, &stubAssistService{})

	rec := doJSON(t, router, http.MethodPost, "/assist/query", api.AssistRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssistHandler_Explain(t *testing.T) {
	t.Parallel()

	stub := &stubAssistService{explanation: "## Overview\n- Light becomes chemical energy."}
	router := newAssistRouter(t, stub)

	rec := doJSON(t, router, http.MethodPost, "/assist/explain", api.ExplainRequest{
		Text:  "Photosynthesis converts light into chemical energy.",
		Style: "detailed",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ExplainResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, stub.explanation, resp.Explanation)
	assert.Equal(t, "detailed", resp.Style)
	assert.Equal(t, generation.StyleDetailed, stub.gotStyle)
}

func TestAssistHandler_Explain_UnknownStyle(t *testing.T) {
	t.Parallel()

	stub := &stubAssistService{explanation: "unused"}
	router := newAssistRouter(t, stub)

	rec := doJSON(t, router, http.MethodPost, "/assist/explain", api.ExplainRequest{
		Text:  "Some text",
		Style: "verbose",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, stub.gotText)
}

func TestAssistHandler_Explain_MissingText(t *testing.T) {
	t.Parallel()

	router := newAssistRouter(t, &stubAssistService{})

	rec := doJSON(t, router, http.MethodPost, "/assist/explain", api.ExplainRequest{Style: "simple"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssistHandler_Explain_UpstreamFailure(t *testing.T) {
	t.Parallel()

	stub := &stubAssistService{err: generation.ErrGenerationFailed}
	router := newAssistRouter(t, stub)

	rec := doJSON(t, router, http.MethodPost, "/assist/explain", api.ExplainRequest{
		Text:  "Some text",
		Style: "academic",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
