// Package srs implements the spaced-repetition scheduling algorithm: a
// pure mapping from a card's current scheduling state and a review grade
// to the card's next scheduling state. The package has no side effects
// and no clock of its own; callers inject the current time.
package srs
