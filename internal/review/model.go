// Package review persists per-user scheduling state for generic reviewable
// content and applies the interval scheduler to review events.
package review

import (
	"errors"
	"time"

	"github.com/mnemora/mnemora/internal/scheduler"
)

var (
	ErrUnknownContentKind = errors.New("unknown content kind")
	ErrSubjectNotFound    = errors.New("review subject not found")
)

// ContentKind identifies what a scheduling state refers to. The set is
// closed; anything else is rejected before reaching storage.
type ContentKind string

const (
	ContentKindQuestion       ContentKind = "question"
	ContentKindKnowledgePoint ContentKind = "knowledge_point"
)

// Valid reports whether k is a recognized content kind.
func (k ContentKind) Valid() bool {
	switch k {
	case ContentKindQuestion, ContentKindKnowledgePoint:
		return true
	}
	return false
}

// SchedulingState is one row of scheduling state for a (user, subject)
// pair. NextReview is always derived from the last review time plus the
// interval; it is never written independently.
type SchedulingState struct {
	ID           int64             `db:"id"`
	UserID       int64             `db:"user_id"`
	ContentID    int64             `db:"content_id"`
	ContentKind  ContentKind       `db:"content_kind"`
	Mastery      scheduler.Mastery `db:"mastery"`
	ReviewCount  int               `db:"review_count"`
	EaseFactor   float64           `db:"ease_factor"`
	IntervalDays int               `db:"interval_days"`
	LastReviewed *time.Time        `db:"last_reviewed"`
	NextReview   time.Time         `db:"next_review"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at"`
}

// SchedulerState converts the row into the pure scheduler input.
func (s *SchedulingState) SchedulerState() scheduler.State {
	return scheduler.State{
		EaseFactor:   s.EaseFactor,
		IntervalDays: s.IntervalDays,
		ReviewCount:  s.ReviewCount,
	}
}

// MasteryForQuality derives the coarse mastery bucket recorded alongside a
// graded review. It is the inverse of the mastery-to-quality mapping used
// by study-set reviews: a failed recall drops back to not learned, a
// perfect recall counts as mastered, anything in between is learning.
func MasteryForQuality(q scheduler.Quality) scheduler.Mastery {
	switch {
	case q < 3:
		return scheduler.MasteryNotLearned
	case q == 5:
		return scheduler.MasteryMastered
	default:
		return scheduler.MasteryLearning
	}
}
