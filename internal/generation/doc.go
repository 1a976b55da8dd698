// Package generation defines the boundary between the application core
// and external text-generation services: an interface for deriving
// flashcard drafts from note text and one for answering a query against
// retrieved note context. Implementations live under internal/platform.
package generation
