// Package studyset persists per-user mastery progress for knowledge points
// inside study sets and selects what to review next.
package studyset

import (
	"errors"
	"time"

	"github.com/mnemora/mnemora/internal/scheduler"
)

var (
	ErrKnowledgePointNotFound = errors.New("knowledge point not found in study set")
	ErrProgressNotFound       = errors.New("knowledge point progress not found")
)

// KnowledgePoint is a single learnable unit inside a study set.
// Importance (1..5) scales study priority and recommended study time.
type KnowledgePoint struct {
	ID            int64  `db:"id"`
	LearningSetID int64  `db:"learning_set_id"`
	Title         string `db:"title"`
	Importance    int    `db:"importance"`
}

// Progress is the scheduling state of a (user, knowledge point, study set)
// triple. It carries the same state shape as a generic review subject plus
// the coarse mastery level that drives its grading.
type Progress struct {
	ID               int64             `db:"id"`
	UserID           int64             `db:"user_id"`
	KnowledgePointID int64             `db:"knowledge_point_id"`
	LearningSetID    int64             `db:"learning_set_id"`
	Mastery          scheduler.Mastery `db:"mastery"`
	ReviewCount      int               `db:"review_count"`
	EaseFactor       float64           `db:"ease_factor"`
	IntervalDays     int               `db:"interval_days"`
	LastReviewed     *time.Time        `db:"last_reviewed"`
	NextReview       time.Time         `db:"next_review"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

// SchedulerState converts the row into the pure scheduler input.
func (p *Progress) SchedulerState() scheduler.State {
	return scheduler.State{
		EaseFactor:   p.EaseFactor,
		IntervalDays: p.IntervalDays,
		ReviewCount:  p.ReviewCount,
	}
}

// DueItem pairs a knowledge point with its progress. Progress is nil when
// the point was never scheduled for this user; such items are always due
// and are treated as not learned.
type DueItem struct {
	KnowledgePoint KnowledgePoint
	Progress       *Progress
}

// Mastery returns the effective mastery level of the item.
func (i DueItem) Mastery() scheduler.Mastery {
	if i.Progress == nil {
		return scheduler.MasteryNotLearned
	}
	return i.Progress.Mastery
}

// NextReview returns the due timestamp, or the zero time for a
// never-scheduled item.
func (i DueItem) NextReview() time.Time {
	if i.Progress == nil {
		return time.Time{}
	}
	return i.Progress.NextReview
}

// NextReviewItem is the selector's pick of the most urgent due item.
type NextReviewItem struct {
	Item               DueItem
	Priority           float64
	RecommendedMinutes int
	RemainingCount     int
}
