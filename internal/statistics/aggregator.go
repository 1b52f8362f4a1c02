package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/mnemora/mnemora/internal/scheduler"
)

const dayKeyFormat = "2006-01-02"

// Aggregator computes statistics from loaded scheduling state and review
// logs. All aggregation happens in Go; the repository only loads rows.
type Aggregator struct {
	repo  Repository
	clock scheduler.Clock
}

// NewAggregator creates a new Aggregator.
func NewAggregator(repo Repository, clock scheduler.Clock) *Aggregator {
	return &Aggregator{repo: repo, clock: clock}
}

// Overview returns the user's workload snapshot: how many items they track,
// how many are due right now or already done today, the average ease factor,
// and the mastery distribution.
func (a *Aggregator) Overview(ctx context.Context, userID int64) (*Overview, error) {
	states, err := a.repo.LoadStates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("build overview: %w", err)
	}

	now := a.clock.Now()
	today := startOfDay(now)
	times, err := a.repo.LoadReviewTimes(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("build overview: %w", err)
	}

	overview := &Overview{
		TotalItems:          len(states),
		CompletedToday:      len(times),
		MasteryDistribution: make(map[scheduler.Mastery]int),
	}
	var easeSum float64
	for _, state := range states {
		easeSum += state.EaseFactor
		overview.TotalReviews += state.ReviewCount
		overview.MasteryDistribution[state.Mastery]++
		if scheduler.IsDue(now, state.NextReview) {
			overview.DueToday++
		}
	}
	if len(states) > 0 {
		overview.AverageEaseFactor = easeSum / float64(len(states))
	}
	return overview, nil
}

// LearningStreak returns the number of consecutive calendar days, ending
// today, on which the user reviewed at least one item. A day without any
// review breaks the streak; no review yet today means the streak is 0.
func (a *Aggregator) LearningStreak(ctx context.Context, userID int64) (int, error) {
	days, err := a.repo.LoadReviewDays(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("calculate learning streak: %w", err)
	}

	reviewed := make(map[string]struct{}, len(days))
	for _, day := range days {
		reviewed[day.Format(dayKeyFormat)] = struct{}{}
	}

	streak := 0
	for day := startOfDay(a.clock.Now()); ; day = day.AddDate(0, 0, -1) {
		if _, ok := reviewed[day.Format(dayKeyFormat)]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}

// DailySummary reports today's completed and remaining reviews, tomorrow's
// load, and how far through today's workload the user is.
func (a *Aggregator) DailySummary(ctx context.Context, userID int64) (*DailySummary, error) {
	states, err := a.repo.LoadStates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("build daily summary: %w", err)
	}

	now := a.clock.Now()
	today := startOfDay(now)
	times, err := a.repo.LoadReviewTimes(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("build daily summary: %w", err)
	}

	// Due today means due right now. An item whose next review lands later
	// today is not part of the current workload and not tomorrow's either.
	summary := &DailySummary{CompletedToday: len(times)}
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)
	for _, state := range states {
		switch {
		case scheduler.IsDue(now, state.NextReview):
			summary.DueToday++
		case !state.NextReview.Before(tomorrow) && state.NextReview.Before(dayAfter):
			summary.DueTomorrow++
		}
	}

	workload := summary.CompletedToday + summary.DueToday
	if workload < 1 {
		workload = 1
	}
	summary.CompletionRate = float64(summary.CompletedToday) / float64(workload) * 100
	return summary, nil
}

// WeeklySummary breaks the current Monday-based week down into per-day
// review counts, with the weekly total and the average per day.
func (a *Aggregator) WeeklySummary(ctx context.Context, userID int64) (*WeeklySummary, error) {
	start := weekStart(a.clock.Now())
	times, err := a.repo.LoadReviewTimes(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("build weekly summary: %w", err)
	}

	summary := &WeeklySummary{WeekStart: start}
	for i := range summary.Days {
		summary.Days[i].Date = start.AddDate(0, 0, i)
	}
	end := start.AddDate(0, 0, 7)
	for _, reviewedAt := range times {
		if !reviewedAt.Before(end) {
			continue
		}
		day := int(startOfDay(reviewedAt).Sub(start).Hours() / 24)
		if day < 0 || day > 6 {
			continue
		}
		summary.Days[day].Reviews++
		summary.TotalReviews++
	}
	summary.AveragePerDay = float64(summary.TotalReviews) / 7
	return summary, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns midnight of the Monday of t's week.
func weekStart(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
