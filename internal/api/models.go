package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/service"
)

// CreateNoteRequest represents the request body for creating a note.
type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required,max=500"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags" validate:"omitempty,dive,required"`
}

// UpdateNoteRequest represents the request body for updating a note.
type UpdateNoteRequest struct {
	Title   string   `json:"title" validate:"required,max=500"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags" validate:"omitempty,dive,required"`
}

// NoteResponse represents the response data for a note.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func noteToResponse(note domain.Note) NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// CreateDeckRequest represents the request body for creating a deck.
type CreateDeckRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// DeckResponse represents the response data for a deck.
type DeckResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CardCount int       `json:"card_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func deckToResponse(deck domain.Deck) DeckResponse {
	return DeckResponse{
		ID:        deck.ID.String(),
		Name:      deck.Name,
		CardCount: len(deck.CardIDs),
		CreatedAt: deck.CreatedAt,
		UpdatedAt: deck.UpdatedAt,
	}
}

// CreateCardRequest represents the request body for creating a card by hand.
type CreateCardRequest struct {
	DeckID       string `json:"deck_id" validate:"required,uuid"`
	SourceNoteID string `json:"source_note_id" validate:"omitempty,uuid"`
	Front        string `json:"front" validate:"required"`
	Back         string `json:"back" validate:"required"`
	Explanation  string `json:"explanation"`
	CardType     string `json:"card_type" validate:"required,oneof=qa cloze mcq"`
}

// EditCardRequest represents the request body for editing a card's content.
// Scheduling state is never editable through the API.
type EditCardRequest struct {
	Front       string `json:"front" validate:"required"`
	Back        string `json:"back" validate:"required"`
	Explanation string `json:"explanation"`
}

// CardResponse represents the response data for a card, including its
// scheduling state.
type CardResponse struct {
	ID           string    `json:"id"`
	DeckID       string    `json:"deck_id"`
	SourceNoteID string    `json:"source_note_id,omitempty"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Explanation  string    `json:"explanation,omitempty"`
	CardType     string    `json:"card_type"`
	Repetition   int       `json:"repetition"`
	Interval     int       `json:"interval"`
	EaseFactor   float64   `json:"ease_factor"`
	DueDate      time.Time `json:"due_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func cardToResponse(card domain.Card) CardResponse {
	resp := CardResponse{
		ID:          card.ID.String(),
		DeckID:      card.DeckID.String(),
		Front:       card.Front,
		Back:        card.Back,
		Explanation: card.Explanation,
		CardType:    string(card.CardType),
		Repetition:  card.Repetition,
		Interval:    card.Interval,
		EaseFactor:  card.EaseFactor,
		DueDate:     card.DueDate,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
	if card.SourceNoteID != uuid.Nil {
		resp.SourceNoteID = card.SourceNoteID.String()
	}
	return resp
}

// GenerateCardsRequest represents the request body for generating cards
// from a note.
type GenerateCardsRequest struct {
	NoteID string `json:"note_id" validate:"required,uuid"`
	DeckID string `json:"deck_id" validate:"required,uuid"`
}

// StartSessionRequest represents the request body for starting a review
// session over a deck.
type StartSessionRequest struct {
	DeckID string `json:"deck_id" validate:"required,uuid"`
}

// GradeRequest represents the request body for grading the current card.
// Grades are the four-valued recall scale: 0 again, 1 hard, 2 good, 3 easy.
type GradeRequest struct {
	Grade int `json:"grade" validate:"min=0,max=3"`
}

// SessionStatusResponse represents the response data for session progress.
type SessionStatusResponse struct {
	State    string `json:"state"`
	Position int    `json:"position"`
	Total    int    `json:"total"`
}

func sessionStatusToResponse(status service.SessionStatus) SessionStatusResponse {
	return SessionStatusResponse{
		State:    string(status.State),
		Position: status.Position,
		Total:    status.Total,
	}
}

// CurrentCardResponse represents the card under review. The back and
// explanation are withheld until the card is revealed.
type CurrentCardResponse struct {
	ID          string `json:"id"`
	Front       string `json:"front"`
	Back        string `json:"back,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	CardType    string `json:"card_type"`
	Revealed    bool   `json:"revealed"`
}

func currentCardToResponse(card domain.Card, revealed bool) CurrentCardResponse {
	resp := CurrentCardResponse{
		ID:       card.ID.String(),
		Front:    card.Front,
		CardType: string(card.CardType),
		Revealed: revealed,
	}
	if revealed {
		resp.Back = card.Back
		resp.Explanation = card.Explanation
	}
	return resp
}

// AssistRequest represents the request body for a contextual query.
type AssistRequest struct {
	Query string `json:"query" validate:"required"`
}

// ExplainRequest represents the request body for explaining pasted text.
type ExplainRequest struct {
	Text  string `json:"text" validate:"required"`
	Style string `json:"style" validate:"required,oneof=simple detailed academic"`
}

// ExplainResponse represents the response data for an explanation.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
	Style       string `json:"style"`
}

// AssistSourceResponse represents a note that grounded an answer.
type AssistSourceResponse struct {
	NoteID  string `json:"note_id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// AssistResponse represents the response data for a contextual query.
type AssistResponse struct {
	Answer  string                 `json:"answer"`
	Sources []AssistSourceResponse `json:"sources"`
}

func assistToResponse(answer service.Answer) AssistResponse {
	sources := make([]AssistSourceResponse, 0, len(answer.Sources))
	for _, src := range answer.Sources {
		sources = append(sources, AssistSourceResponse{
			NoteID:  src.NoteID.String(),
			Title:   src.Title,
			Snippet: src.Snippet,
		})
	}
	return AssistResponse{Answer: answer.Text, Sources: sources}
}
