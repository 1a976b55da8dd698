package srs

import "errors"

// ErrInvalidGrade is returned when a grade outside the four-valued domain
// is passed to the scheduler. This is a caller bug, never retried.
var ErrInvalidGrade = errors.New("invalid review grade")

// Grade is the user's recall quality for a single card review. The four
// values form a total order: Again < Hard < Good < Easy. Again and Hard
// are lapses and reset a card's repetition streak; Good and Easy are
// successes and advance it.
type Grade int

// Possible grade values
const (
	GradeAgain Grade = iota
	GradeHard
	GradeGood
	GradeEasy
)

// Valid reports whether g is one of the four defined grades.
func (g Grade) Valid() bool {
	return g >= GradeAgain && g <= GradeEasy
}

// IsLapse reports whether g resets a card's repetition streak.
func (g Grade) IsLapse() bool {
	return g == GradeAgain || g == GradeHard
}

// String returns the lowercase name of the grade.
func (g Grade) String() string {
	switch g {
	case GradeAgain:
		return "again"
	case GradeHard:
		return "hard"
	case GradeGood:
		return "good"
	case GradeEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// ParseGrade converts an integer to a Grade.
// Returns ErrInvalidGrade for values outside 0..3.
func ParseGrade(v int) (Grade, error) {
	g := Grade(v)
	if !g.Valid() {
		return 0, ErrInvalidGrade
	}
	return g, nil
}
