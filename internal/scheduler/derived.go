package scheduler

import (
	"math"
	"time"
)

const (
	MinImportance = 1
	MaxImportance = 5

	hoursPerDay = 24
)

// IsDue reports whether a subject with the given next review timestamp is
// due at now. A zero next review timestamp means the subject has never been
// scheduled, which always counts as due.
func IsDue(now, nextReview time.Time) bool {
	if nextReview.IsZero() {
		return true
	}
	return !now.Before(nextReview)
}

// RetentionEstimate estimates the probability that a subject is still
// recalled, given its mastery level, days since the last review, and ease
// factor. The base retention per mastery level decays exponentially with a
// half-life proportional to the ease factor.
func RetentionEstimate(m Mastery, daysSinceReview, ease float64) float64 {
	var base float64
	switch m {
	case MasteryLearning:
		base = 0.7
	case MasteryMastered:
		base = 0.9
	default:
		base = 0.0
	}
	if ease <= 0 {
		ease = DefaultEaseFactor
	}

	retention := base * math.Exp(-daysSinceReview/(ease*2))
	return math.Min(1, math.Max(0, retention))
}

// StudyPriority scores how urgently a subject should be studied at now.
// Lower mastery and longer overdue time raise the score; importance (1..5)
// scales it. A subject that was never reviewed is fully due but carries no
// overdue bonus.
func StudyPriority(m Mastery, nextReview time.Time, importance int, now time.Time) float64 {
	var base float64
	switch m {
	case MasteryLearning:
		base = 5.0
	case MasteryMastered:
		base = 1.0
	default:
		base = 10.0
	}

	overdueMultiplier := 1.0
	if !nextReview.IsZero() && IsDue(now, nextReview) {
		daysOverdue := now.Sub(nextReview).Hours() / hoursPerDay
		overdueMultiplier = 1.0 + 0.1*daysOverdue
	}

	importanceMultiplier := float64(clampImportance(importance)) / 3.0

	return base * overdueMultiplier * importanceMultiplier
}

// RecommendedMinutes suggests a study duration in whole minutes for a
// subject, based on its mastery level and importance. The result is never
// below one minute.
func RecommendedMinutes(m Mastery, importance int) int {
	var base float64
	switch m {
	case MasteryLearning:
		base = 3.0
	case MasteryMastered:
		base = 1.0
	default:
		base = 5.0
	}

	scale := 1.0 + 0.2*float64(clampImportance(importance)-1)
	minutes := int(base * scale)
	if minutes < 1 {
		return 1
	}
	return minutes
}

func clampImportance(importance int) int {
	if importance < MinImportance {
		return MinImportance
	}
	if importance > MaxImportance {
		return MaxImportance
	}
	return importance
}
