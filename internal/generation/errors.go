package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when card generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate cards from text")

	// ErrInvalidResponse is returned when the service response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyInput is returned when the input text or query is empty
	ErrEmptyInput = errors.New("input text cannot be empty")

	// ErrInvalidStyle is returned when an explanation style is not recognized
	ErrInvalidStyle = errors.New("invalid explanation style")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
