// Package gemini implements the generation interfaces using Google's
// Gemini API: flashcard drafting from note text and contextual question
// answering over retrieved note snippets.
package gemini
