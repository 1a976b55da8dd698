package srs

import (
	"math"
	"time"

	"github.com/giahuy0968/NoteSmart/internal/domain"
)

// Schedule computes a card's next scheduling state from a review grade.
//
// It is a pure function: the card is passed and returned by value, the
// current time is injected, and no I/O happens. Content fields pass
// through untouched.
//
// The algorithm is an SM-2 variant:
//
//   - A lapse (Again or Hard) resets the repetition streak to zero and
//     the interval to one day. The ease factor is left unchanged on a
//     lapse, a known deviation from canonical SM-2, which penalizes
//     ease on failure. Hard counts as a full lapse here, not a reduced
//     success.
//   - A success (Good or Easy) increments the repetition streak and
//     adjusts the ease factor by 0.1 - (3-g)*(0.08 + (3-g)*0.02) where
//     g is the grade's numeric value: Good (g=2) leaves ease unchanged,
//     Easy (g=3) raises it by 0.1. The result is clamped to the 1.3
//     floor; there is no ceiling.
//   - The interval follows the SM-2 staircase: 1 day after the first
//     success, 6 days after the second, then the previous interval
//     multiplied by the updated ease factor, rounded half away from
//     zero.
//
// The new due date is the injected now plus the new interval in calendar
// days (AddDate, preserving time-of-day). The now value is normalized to
// UTC so day arithmetic is unambiguous across timezones.
//
// Returns ErrInvalidGrade if grade is outside the four-valued domain;
// the card is returned unmodified in that case.
func Schedule(card domain.Card, grade Grade, now time.Time) (domain.Card, error) {
	if !grade.Valid() {
		return card, ErrInvalidGrade
	}

	now = now.UTC()

	if grade.IsLapse() {
		card.Repetition = 0
		card.Interval = 1
	} else {
		card.Repetition++

		q := float64(grade)
		ef := card.EaseFactor + 0.1 - (3-q)*(0.08+(3-q)*0.02)
		if ef < domain.MinEaseFactor {
			ef = domain.MinEaseFactor
		}
		card.EaseFactor = ef

		switch card.Repetition {
		case 1:
			card.Interval = 1
		case 2:
			card.Interval = 6
		default:
			card.Interval = int(math.Round(float64(card.Interval) * ef))
		}
	}

	// Intervals are never shorter than a day, whatever state came in.
	if card.Interval < 1 {
		card.Interval = 1
	}

	card.DueDate = now.AddDate(0, 0, card.Interval)
	card.UpdatedAt = now

	return card, nil
}
