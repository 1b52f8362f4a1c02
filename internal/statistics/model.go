// Package statistics aggregates review activity and scheduling state into
// per-user overviews, streaks, and daily and weekly summaries.
package statistics

import (
	"time"

	"github.com/mnemora/mnemora/internal/scheduler"
)

// ItemState is the scheduling state of one reviewable item, reduced to the
// fields statistics care about. Rows come from both the generic review store
// and the knowledge point progress store.
type ItemState struct {
	Mastery      scheduler.Mastery `db:"mastery"`
	ReviewCount  int               `db:"review_count"`
	EaseFactor   float64           `db:"ease_factor"`
	NextReview   time.Time         `db:"next_review"`
	LastReviewed *time.Time        `db:"last_reviewed"`
}

// Overview is a snapshot of a user's review workload and progress.
type Overview struct {
	TotalItems          int
	TotalReviews        int
	DueToday            int
	CompletedToday      int
	AverageEaseFactor   float64
	MasteryDistribution map[scheduler.Mastery]int
}

// DailySummary describes today's review activity and the upcoming load.
type DailySummary struct {
	CompletedToday int
	DueToday       int
	DueTomorrow    int
	// CompletionRate is the percentage of today's workload already done,
	// where the workload is completed reviews plus reviews still due.
	CompletionRate float64
}

// DayActivity is the review count of one calendar day.
type DayActivity struct {
	Date    time.Time
	Reviews int
}

// WeeklySummary breaks the current week down per day. Weeks start on Monday.
type WeeklySummary struct {
	WeekStart     time.Time
	Days          [7]DayActivity
	TotalReviews  int
	AveragePerDay float64
}
