package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/giahuy0968/NoteSmart/internal/config"
	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"google.golang.org/genai"
)

// Verify interface compliance at compile time
var (
	_ generation.Generator = (*Client)(nil)
	_ generation.Answerer  = (*Client)(nil)
	_ generation.Explainer = (*Client)(nil)
)

// cardPromptTemplate asks for strict JSON so the response can be parsed
// without scraping.
const cardPromptTemplate = `You are a flashcard author. From the study note below, produce up to {{.MaxCards}} flashcards that test its key facts and concepts.

Respond with JSON only, in this exact shape:
{"cards": [{"front": "...", "back": "...", "explanation": "...", "card_type": "qa"}]}

Rules:
- "card_type" is one of "qa", "cloze", "mcq".
- For cloze cards, mark the hidden span in the front as {{"{{c1::answer}}"}} and put the answer in the back.
- "explanation" is optional context shown after the answer; omit it when it adds nothing.
- Do not invent facts that are not in the note.

Note:
{{.NoteText}}`

// answerPromptTemplate grounds the answer in retrieved note snippets.
const answerPromptTemplate = `Answer the question using only the numbered note excerpts below. If the excerpts do not contain the answer, say so plainly.

Question: {{.Query}}

Excerpts:
{{range $i, $s := .Snippets}}[{{$i}}] {{$s}}
{{end}}`

type cardPromptData struct {
	NoteText string
	MaxCards int
}

type answerPromptData struct {
	Query    string
	Snippets []string
}

// explainPromptTemplate turns pasted text into a markdown explanation in
// the requested register.
const explainPromptTemplate = `Explain the text below. {{.StyleInstruction}}

Write the explanation as markdown with headings and bullet points where they help. Do not invent facts that are not supported by the text.

Text:
{{.Text}}`

// explainStyleInstructions maps each style to its prompt instruction.
var explainStyleInstructions = map[generation.ExplainStyle]string{
	generation.StyleSimple:   "Use plain language that someone new to the topic can follow, with short sentences and everyday analogies.",
	generation.StyleDetailed: "Be thorough: cover the key ideas one by one and spell out how they relate to each other.",
	generation.StyleAcademic: "Use formal academic register with precise terminology, defining each technical term on first use.",
}

type explainPromptData struct {
	Text             string
	StyleInstruction string
}

// Client implements generation.Generator and generation.Answerer using
// Google's Gemini API.
type Client struct {
	logger          *slog.Logger
	client          *genai.Client
	model           string
	maxCards        int
	cardTemplate    *template.Template
	answerTemplate  *template.Template
	explainTemplate *template.Template
}

// NewClient creates a Gemini-backed generation client from the LLM
// configuration. Returns ErrInvalidConfig if required settings are missing
// or the underlying client cannot be constructed.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxCardsPerNote <= 0 {
		return nil, fmt.Errorf("%w: max cards per note must be positive", generation.ErrInvalidConfig)
	}

	cardTmpl, err := template.New("cards").Parse(cardPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse card prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	answerTmpl, err := template.New("answer").Parse(answerPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse answer prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	explainTmpl, err := template.New("explain").Parse(explainPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse explain prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Client{
		logger:          logger.With(slog.String("component", "gemini_client")),
		client:          client,
		model:           cfg.ModelName,
		maxCards:        cfg.MaxCardsPerNote,
		cardTemplate:    cardTmpl,
		answerTemplate:  answerTmpl,
		explainTemplate: explainTmpl,
	}, nil
}

// GenerateCards implements generation.Generator.
func (c *Client) GenerateCards(ctx context.Context, noteText string) ([]generation.CardDraft, error) {
	if strings.TrimSpace(noteText) == "" {
		return nil, generation.ErrEmptyInput
	}

	var prompt bytes.Buffer
	data := cardPromptData{NoteText: noteText, MaxCards: c.maxCards}
	if err := c.cardTemplate.Execute(&prompt, data); err != nil {
		return nil, fmt.Errorf("%w: failed to build prompt: %v", generation.ErrGenerationFailed, err)
	}

	c.logger.DebugContext(ctx, "requesting card generation",
		slog.Int("note_length", len(noteText)),
		slog.String("model", c.model))

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt.String()),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", generation.ErrInvalidResponse)
	}

	drafts, err := parseCardResponse(text, c.maxCards)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "cards generated",
		slog.Int("count", len(drafts)),
		slog.String("model", c.model))

	return drafts, nil
}

// Answer implements generation.Answerer.
func (c *Client) Answer(ctx context.Context, query string, snippets []string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", generation.ErrEmptyInput
	}

	var prompt bytes.Buffer
	data := answerPromptData{Query: query, Snippets: snippets}
	if err := c.answerTemplate.Execute(&prompt, data); err != nil {
		return "", fmt.Errorf("%w: failed to build prompt: %v", generation.ErrGenerationFailed, err)
	}

	c.logger.DebugContext(ctx, "requesting contextual answer",
		slog.Int("snippets", len(snippets)),
		slog.String("model", c.model))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt.String()), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", generation.ErrInvalidResponse)
	}

	return text, nil
}

// Explain implements generation.Explainer.
func (c *Client) Explain(ctx context.Context, text string, style generation.ExplainStyle) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyInput
	}

	instruction, ok := explainStyleInstructions[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", generation.ErrInvalidStyle, style)
	}

	var prompt bytes.Buffer
	data := explainPromptData{Text: text, StyleInstruction: instruction}
	if err := c.explainTemplate.Execute(&prompt, data); err != nil {
		return "", fmt.Errorf("%w: failed to build prompt: %v", generation.ErrGenerationFailed, err)
	}

	c.logger.DebugContext(ctx, "requesting explanation",
		slog.Int("text_length", len(text)),
		slog.String("style", string(style)),
		slog.String("model", c.model))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt.String()), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	explanation := resp.Text()
	if explanation == "" {
		return "", fmt.Errorf("%w: empty response", generation.ErrInvalidResponse)
	}

	return explanation, nil
}

// parseCardResponse decodes the model's JSON output into card drafts,
// dropping entries with missing fields or unknown card types and capping
// the result at maxCards.
func parseCardResponse(text string, maxCards int) ([]generation.CardDraft, error) {
	var parsed cardResponseSchema
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}

	if len(parsed.Cards) == 0 {
		return nil, fmt.Errorf("%w: no cards in response", generation.ErrInvalidResponse)
	}

	drafts := make([]generation.CardDraft, 0, len(parsed.Cards))
	for _, card := range parsed.Cards {
		if card.Front == "" || card.Back == "" {
			continue
		}

		cardType, err := domain.ParseCardType(card.CardType)
		if err != nil {
			cardType = domain.CardTypeQA
		}

		drafts = append(drafts, generation.CardDraft{
			Front:       card.Front,
			Back:        card.Back,
			Explanation: card.Explanation,
			CardType:    cardType,
		})

		if len(drafts) == maxCards {
			break
		}
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: no usable cards in response", generation.ErrInvalidResponse)
	}

	return drafts, nil
}
