package srs

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/giahuy0968/NoteSmart/internal/domain"
	"github.com/google/uuid"
)

// fixedNow is the injected clock value used throughout these tests.
var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func testCard(repetition, interval int, easeFactor float64) domain.Card {
	return domain.Card{
		ID:         uuid.New(),
		DeckID:     uuid.New(),
		Front:      "front",
		Back:       "back",
		CardType:   domain.CardTypeQA,
		Repetition: repetition,
		Interval:   interval,
		EaseFactor: easeFactor,
		DueDate:    fixedNow,
	}
}

func TestScheduleLapseResetsProgress(t *testing.T) {
	t.Parallel()

	for _, grade := range []Grade{GradeAgain, GradeHard} {
		card := testCard(5, 30, 2.2)

		updated, err := Schedule(card, grade, fixedNow)
		if err != nil {
			t.Fatalf("Expected no error for grade %v, got %v", grade, err)
		}

		if updated.Repetition != 0 {
			t.Errorf("Grade %v: expected repetition 0, got %d", grade, updated.Repetition)
		}

		if updated.Interval != 1 {
			t.Errorf("Grade %v: expected interval 1, got %d", grade, updated.Interval)
		}

		// A lapse leaves the ease factor untouched in this variant.
		if updated.EaseFactor != 2.2 {
			t.Errorf("Grade %v: expected ease factor 2.2, got %v", grade, updated.EaseFactor)
		}
	}
}

func TestScheduleSuccessAdvancesRepetition(t *testing.T) {
	t.Parallel()

	for _, grade := range []Grade{GradeGood, GradeEasy} {
		card := testCard(3, 15, 2.5)

		updated, err := Schedule(card, grade, fixedNow)
		if err != nil {
			t.Fatalf("Expected no error for grade %v, got %v", grade, err)
		}

		if updated.Repetition != card.Repetition+1 {
			t.Errorf("Grade %v: expected repetition %d, got %d",
				grade, card.Repetition+1, updated.Repetition)
		}
	}
}

func TestScheduleIntervalStaircase(t *testing.T) {
	t.Parallel()

	// Three consecutive Good grades from a fresh card must yield the
	// interval sequence 1, 6, 15. Good leaves ease at 2.5, so the third
	// interval is round(6 * 2.5).
	card := testCard(0, 0, 2.5)
	want := []int{1, 6, 15}

	for i, wantInterval := range want {
		var err error
		card, err = Schedule(card, GradeGood, fixedNow)
		if err != nil {
			t.Fatalf("Review %d: expected no error, got %v", i+1, err)
		}

		if card.Interval != wantInterval {
			t.Errorf("Review %d: expected interval %d, got %d", i+1, wantInterval, card.Interval)
		}

		if card.Repetition != i+1 {
			t.Errorf("Review %d: expected repetition %d, got %d", i+1, i+1, card.Repetition)
		}

		if card.EaseFactor != 2.5 {
			t.Errorf("Review %d: expected ease factor 2.5, got %v", i+1, card.EaseFactor)
		}
	}
}

func TestScheduleEasyBumpsEaseFactor(t *testing.T) {
	t.Parallel()

	card := testCard(0, 0, 2.5)

	updated, err := Schedule(card, GradeEasy, fixedNow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if math.Abs(updated.EaseFactor-2.6) > 1e-9 {
		t.Errorf("Expected ease factor 2.6, got %v", updated.EaseFactor)
	}
}

func TestScheduleEaseFactorFloor(t *testing.T) {
	t.Parallel()

	// Good nudges ease by zero, so a card already at the floor stays there.
	for _, grade := range []Grade{GradeGood, GradeEasy} {
		card := testCard(2, 6, domain.MinEaseFactor)

		updated, err := Schedule(card, grade, fixedNow)
		if err != nil {
			t.Fatalf("Expected no error for grade %v, got %v", grade, err)
		}

		if updated.EaseFactor < domain.MinEaseFactor {
			t.Errorf("Grade %v: ease factor %v below floor %v",
				grade, updated.EaseFactor, domain.MinEaseFactor)
		}
	}
}

func TestScheduleIntervalNeverBelowOne(t *testing.T) {
	t.Parallel()

	grades := []Grade{GradeAgain, GradeHard, GradeGood, GradeEasy}
	cards := []domain.Card{
		testCard(0, 0, 2.5),
		testCard(1, 1, 1.3),
		testCard(10, 200, 1.3),
		// Inconsistent incoming state: repetition says mature, interval
		// says fresh. The multiplicative branch must still floor at 1.
		testCard(5, 0, 2.5),
	}

	for _, card := range cards {
		for _, grade := range grades {
			updated, err := Schedule(card, grade, fixedNow)
			if err != nil {
				t.Fatalf("Expected no error for grade %v, got %v", grade, err)
			}
			if updated.Interval < 1 {
				t.Errorf("Grade %v from rep=%d interval=%d: got interval %d, want >= 1",
					grade, card.Repetition, card.Interval, updated.Interval)
			}
		}
	}
}

func TestScheduleDueDateArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		card  domain.Card
		grade Grade
		want  time.Time
	}{
		{
			name:  "lapse schedules tomorrow",
			card:  testCard(4, 20, 2.5),
			grade: GradeAgain,
			want:  fixedNow.AddDate(0, 0, 1),
		},
		{
			name:  "second success schedules six days out",
			card:  testCard(1, 1, 2.5),
			grade: GradeGood,
			want:  fixedNow.AddDate(0, 0, 6),
		},
		{
			name:  "mature success schedules interval*ease days out",
			card:  testCard(2, 6, 2.5),
			grade: GradeGood,
			want:  fixedNow.AddDate(0, 0, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			updated, err := Schedule(tt.card, tt.grade, fixedNow)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if !updated.DueDate.Equal(tt.want) {
				t.Errorf("Expected due date %v, got %v", tt.want, updated.DueDate)
			}
		})
	}
}

func TestScheduleCalendarDayAdditionPreservesTimeOfDay(t *testing.T) {
	t.Parallel()

	// 23:30 UTC plus one calendar day lands on 23:30 the next day, not
	// some 24h-multiple drift across a DST boundary.
	lateNow := time.Date(2025, 3, 8, 23, 30, 0, 0, time.UTC)
	card := testCard(0, 0, 2.5)

	updated, err := Schedule(card, GradeGood, lateNow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	if !updated.DueDate.Equal(want) {
		t.Errorf("Expected due date %v, got %v", want, updated.DueDate)
	}
}

func TestScheduleContentPassesThrough(t *testing.T) {
	t.Parallel()

	card := testCard(1, 1, 2.5)
	card.Front = "What is chlorophyll?"
	card.Back = "The green pigment that absorbs light."
	card.Explanation = "It gives plants their color."
	card.CardType = domain.CardTypeCloze
	card.SourceNoteID = uuid.New()

	updated, err := Schedule(card, GradeGood, fixedNow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.ID != card.ID || updated.DeckID != card.DeckID ||
		updated.SourceNoteID != card.SourceNoteID {
		t.Error("Expected identity fields to pass through unchanged")
	}

	if updated.Front != card.Front || updated.Back != card.Back ||
		updated.Explanation != card.Explanation || updated.CardType != card.CardType {
		t.Error("Expected content fields to pass through unchanged")
	}
}

func TestScheduleInvalidGrade(t *testing.T) {
	t.Parallel()

	card := testCard(2, 6, 2.5)

	for _, v := range []int{-1, 4, 99} {
		updated, err := Schedule(card, Grade(v), fixedNow)
		if !errors.Is(err, ErrInvalidGrade) {
			t.Errorf("Grade %d: expected ErrInvalidGrade, got %v", v, err)
		}

		// The card must come back unmodified on a rejected grade.
		if updated != card {
			t.Errorf("Grade %d: expected card unchanged on invalid grade", v)
		}
	}
}

func TestParseGrade(t *testing.T) {
	t.Parallel()

	for v, want := range map[int]Grade{
		0: GradeAgain,
		1: GradeHard,
		2: GradeGood,
		3: GradeEasy,
	} {
		got, err := ParseGrade(v)
		if err != nil {
			t.Fatalf("ParseGrade(%d): expected no error, got %v", v, err)
		}
		if got != want {
			t.Errorf("ParseGrade(%d): expected %v, got %v", v, want, got)
		}
	}

	if _, err := ParseGrade(4); !errors.Is(err, ErrInvalidGrade) {
		t.Errorf("ParseGrade(4): expected ErrInvalidGrade, got %v", err)
	}
}

func TestGradeProperties(t *testing.T) {
	t.Parallel()

	if !GradeAgain.IsLapse() || !GradeHard.IsLapse() {
		t.Error("Expected Again and Hard to be lapses")
	}

	if GradeGood.IsLapse() || GradeEasy.IsLapse() {
		t.Error("Expected Good and Easy to be successes")
	}

	for g, want := range map[Grade]string{
		GradeAgain: "again",
		GradeHard:  "hard",
		GradeGood:  "good",
		GradeEasy:  "easy",
		Grade(7):   "unknown",
	} {
		if got := g.String(); got != want {
			t.Errorf("Grade(%d).String(): expected %q, got %q", int(g), want, got)
		}
	}
}
