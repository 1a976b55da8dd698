package gemini

import (
	"testing"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/giahuy0968/NoteSmart/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCardResponse(t *testing.T) {
	t.Parallel()

	text := `{
		"cards": [
			{"front": "What is chlorophyll?", "back": "The green pigment in plants.", "card_type": "qa"},
			{"front": "Plants breathe through {{c1::stomata}}.", "back": "stomata", "card_type": "cloze"},
			{"front": "Pick the organelle of photosynthesis", "back": "Chloroplast", "explanation": "Thylakoid membranes host the light reactions.", "card_type": "mcq"}
		]
	}`

	drafts, err := parseCardResponse(text, 10)
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	assert.Equal(t, domain.CardTypeQA, drafts[0].CardType)
	assert.Equal(t, domain.CardTypeCloze, drafts[1].CardType)
	assert.Equal(t, domain.CardTypeMCQ, drafts[2].CardType)
	assert.Equal(t, "Thylakoid membranes host the light reactions.", drafts[2].Explanation)
}

func TestParseCardResponseDropsUnusableEntries(t *testing.T) {
	t.Parallel()

	text := `{
		"cards": [
			{"front": "", "back": "orphan back", "card_type": "qa"},
			{"front": "orphan front", "back": "", "card_type": "qa"},
			{"front": "valid", "back": "card", "card_type": "essay"}
		]
	}`

	drafts, err := parseCardResponse(text, 10)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	// Unknown card types fall back to plain question/answer.
	assert.Equal(t, domain.CardTypeQA, drafts[0].CardType)
}

func TestParseCardResponseCapsAtMax(t *testing.T) {
	t.Parallel()

	text := `{
		"cards": [
			{"front": "a", "back": "1", "card_type": "qa"},
			{"front": "b", "back": "2", "card_type": "qa"},
			{"front": "c", "back": "3", "card_type": "qa"}
		]
	}`

	drafts, err := parseCardResponse(text, 2)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}

func TestParseCardResponseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "malformed JSON", text: `{"cards": [`},
		{name: "empty card list", text: `{"cards": []}`},
		{name: "nothing usable", text: `{"cards": [{"front": "", "back": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseCardResponse(tt.text, 10)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
		})
	}
}

func TestExplainStyleInstructions(t *testing.T) {
	t.Parallel()

	// Every parseable style must have a prompt instruction, so a style
	// that passes the whitelist can never miss the table at request time.
	for _, style := range []generation.ExplainStyle{
		generation.StyleSimple,
		generation.StyleDetailed,
		generation.StyleAcademic,
	} {
		parsed, err := generation.ParseExplainStyle(string(style))
		require.NoError(t, err)
		assert.Equal(t, style, parsed)

		instruction, ok := explainStyleInstructions[style]
		assert.True(t, ok, "missing instruction for style %q", style)
		assert.NotEmpty(t, instruction)
	}

	assert.Len(t, explainStyleInstructions, 3)
}
