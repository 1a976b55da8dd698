// Package service contains the application services that orchestrate
// domain logic, stores, and the generation boundary: note and deck
// management, card lifecycle, flashcard generation, contextual Q&A over
// notes, and the review-session lifecycle with its single-active-session
// guard.
package service
