// Package scheduler implements the SM-2 interval calculation and the
// derived scoring used to rank review subjects. Everything in this package
// is pure: no storage, no wall clock, no shared state.
package scheduler

import (
	"errors"
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// Interval for the first and second successful reviews, in days.
	firstInterval  = 1
	secondInterval = 6
)

var (
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")
	ErrInvalidMastery = errors.New("mastery must be between 0 and 2")
)

// Quality is the 0..5 recall grade of a single review.
// A grade of 3 or higher counts as a successful recall.
type Quality int

const (
	MinQuality Quality = 0
	MaxQuality Quality = 5
)

// Valid reports whether q is inside the 0..5 grading scale.
func (q Quality) Valid() bool {
	return q >= MinQuality && q <= MaxQuality
}

// Successful reports whether q counts as a successful recall.
func (q Quality) Successful() bool {
	return q >= 3
}

// Mastery is the coarse 0..2 label used by study-set reviews.
type Mastery int

const (
	MasteryNotLearned Mastery = 0
	MasteryLearning   Mastery = 1
	MasteryMastered   Mastery = 2
)

// Valid reports whether m is a recognized mastery level.
func (m Mastery) Valid() bool {
	return m >= MasteryNotLearned && m <= MasteryMastered
}

// Quality maps a mastery level onto the SM-2 grading scale.
// The mapping is fixed: NotLearned grades as a failed recall,
// Learning as a borderline pass, Mastered as a perfect recall.
func (m Mastery) Quality() Quality {
	switch m {
	case MasteryLearning:
		return 3
	case MasteryMastered:
		return 5
	default:
		return 0
	}
}

// String returns the label used in persisted rows and CLI output.
func (m Mastery) String() string {
	switch m {
	case MasteryLearning:
		return "learning"
	case MasteryMastered:
		return "mastered"
	default:
		return "not_learned"
	}
}

// State is the scheduling state of a subject before a review is applied.
// ReviewCount is the number of completed reviews prior to the current one;
// the caller increments it when persisting the result.
type State struct {
	EaseFactor   float64
	IntervalDays int
	ReviewCount  int
}

// Result is the outcome of applying one review to a State.
type Result struct {
	EaseFactor   float64
	IntervalDays int
}

// NextEaseFactor applies the SM-2 ease adjustment for a quality grade.
// The floor is applied regardless of quality.
func NextEaseFactor(ease float64, q Quality) float64 {
	if ease == 0 {
		ease = DefaultEaseFactor
	}
	grade := float64(q)
	next := ease + (0.1 - (5-grade)*(0.08+(5-grade)*0.02))
	return math.Max(next, MinEaseFactor)
}

// Review applies one graded review to prev and returns the new ease factor
// and interval. A failed recall resets the interval to one day. Successful
// recalls follow the staged progression: the first review of a subject
// yields 1 day, the second 6 days, and later reviews multiply the previous
// interval by the updated ease factor, rounded up.
func Review(q Quality, prev State) (Result, error) {
	if !q.Valid() {
		return Result{}, ErrInvalidQuality
	}

	ease := NextEaseFactor(prev.EaseFactor, q)

	interval := firstInterval
	if q.Successful() {
		switch prev.ReviewCount {
		case 0:
			interval = firstInterval
		case 1:
			interval = secondInterval
		default:
			last := prev.IntervalDays
			if last < 1 {
				last = 1
			}
			interval = int(math.Ceil(float64(last) * ease))
		}
	}

	return Result{EaseFactor: ease, IntervalDays: interval}, nil
}

// ReviewMastery grades a review by mastery level instead of raw quality.
// It maps the level through Mastery.Quality and delegates to Review, so
// both entry points stay numerically identical for equivalent grades.
func ReviewMastery(m Mastery, prev State) (Result, error) {
	if !m.Valid() {
		return Result{}, ErrInvalidMastery
	}
	return Review(m.Quality(), prev)
}

// NextReviewAt derives the next due timestamp from a review time and the
// interval produced by Review.
func NextReviewAt(reviewedAt time.Time, intervalDays int) time.Time {
	if intervalDays < 1 {
		intervalDays = 1
	}
	return reviewedAt.Add(time.Duration(intervalDays) * 24 * time.Hour)
}
