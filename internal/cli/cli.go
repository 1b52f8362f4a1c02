// Package cli implements the terminal workflows: listing due reviews,
// grading subjects, picking the next study item, and showing statistics.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mnemora/mnemora/internal/reminder"
	"github.com/mnemora/mnemora/internal/review"
	"github.com/mnemora/mnemora/internal/scheduler"
	"github.com/mnemora/mnemora/internal/statistics"
	"github.com/mnemora/mnemora/internal/studyset"
)

// SchedulingService is the part of the scheduling engine the CLI consumes.
type SchedulingService interface {
	ScheduleNewItem(ctx context.Context, userID, contentID int64, kind review.ContentKind) (*review.SchedulingState, error)
	RecordReview(ctx context.Context, userID, contentID int64, kind review.ContentKind, quality scheduler.Quality) (*review.SchedulingState, error)
	GetDueReviews(ctx context.Context, userID int64, limit int) ([]review.SchedulingState, error)
	GetDueForReview(ctx context.Context, userID int64, learningSetID *int64, limit int) ([]studyset.Progress, error)
	UpdateMastery(ctx context.Context, userID, knowledgePointID, learningSetID int64, mastery scheduler.Mastery) (*studyset.Progress, error)
	GetDueItems(ctx context.Context, learningSetID, userID int64) ([]studyset.DueItem, error)
	GetNextReviewItem(ctx context.Context, learningSetID, userID int64) (*studyset.NextReviewItem, error)
	GetRetentionEstimate(mastery scheduler.Mastery, lastReviewed *time.Time, easeFactor float64) float64
	GetReviewStatistics(ctx context.Context, userID int64) (*statistics.Overview, error)
	GetLearningStreak(ctx context.Context, userID int64) (int, error)
	GetDailySummary(ctx context.Context, userID int64) (*statistics.DailySummary, error)
	GetWeeklySummary(ctx context.Context, userID int64) (*statistics.WeeklySummary, error)
	GetDueReminders(ctx context.Context, userID int64) ([]reminder.Reminder, error)
}

// ParseContentKind converts a CLI argument into a content kind.
func ParseContentKind(value string) (review.ContentKind, error) {
	kind := review.ContentKind(value)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", review.ErrUnknownContentKind, value)
	}
	return kind, nil
}

// ParseMastery converts a CLI argument into a mastery level.
func ParseMastery(value string) (scheduler.Mastery, error) {
	switch value {
	case "not_learned":
		return scheduler.MasteryNotLearned, nil
	case "learning":
		return scheduler.MasteryLearning, nil
	case "mastered":
		return scheduler.MasteryMastered, nil
	}
	return 0, fmt.Errorf("%w: %q", scheduler.ErrInvalidMastery, value)
}

func formatNextReview(nextReview time.Time) string {
	if nextReview.IsZero() {
		return "never scheduled"
	}
	return nextReview.Format(time.DateTime)
}
