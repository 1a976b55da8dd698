// Package review implements the review-session state machine. A session
// owns a queue of due-card IDs fixed at construction and walks it one
// card at a time: reveal the answer, grade recall, commit the rescheduled
// card back to the store, advance. The scheduling math itself lives in
// internal/domain/srs; this package owns all temporal and control logic.
package review
