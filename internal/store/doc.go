// Package store defines the persistence interfaces for the application's
// entities and the errors their implementations return. The interfaces are
// deliberately small: whole-entity reads and whole-entity
// replace-by-identifier writes, no partial field patches. Implementations
// live under internal/platform.
package store
