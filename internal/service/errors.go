package service

import "errors"

// Common service-level errors.
var (
	// ErrSessionActive is returned when a review session is started while
	// another session is still live. At most one session may run over the
	// card store at a time.
	ErrSessionActive = errors.New("a review session is already active")

	// ErrNoSession is returned when a review operation is invoked with no
	// session in progress.
	ErrNoSession = errors.New("no review session in progress")
)
