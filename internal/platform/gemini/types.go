package gemini

// cardResponseSchema represents the expected JSON structure of a card
// generation response from the Gemini API.
type cardResponseSchema struct {
	// Cards is the array of flashcards generated from the note text
	Cards []cardSchema `json:"cards"`
}

// cardSchema represents a single flashcard in the API response
type cardSchema struct {
	// Front is the question or prompt side of the flashcard
	Front string `json:"front"`

	// Back is the answer side of the flashcard
	Back string `json:"back"`

	// Explanation is optional extra context shown after the answer
	Explanation string `json:"explanation,omitempty"`

	// CardType is one of "qa", "cloze", "mcq"
	CardType string `json:"card_type"`
}
