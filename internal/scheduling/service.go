// Package scheduling exposes the engine's operations behind one service:
// recording reviews, selecting what to study next, statistics, and
// reminders. Validation happens here before anything touches storage.
package scheduling

import (
	"context"
	"time"

	"github.com/avast/retry-go"

	"github.com/mnemora/mnemora/internal/database"
	"github.com/mnemora/mnemora/internal/reminder"
	"github.com/mnemora/mnemora/internal/review"
	"github.com/mnemora/mnemora/internal/scheduler"
	"github.com/mnemora/mnemora/internal/statistics"
	"github.com/mnemora/mnemora/internal/studyset"
)

// Service is the facade over the scheduling engine.
type Service struct {
	reviews  review.Repository
	progress studyset.ProgressRepository
	selector *studyset.DueSelector
	stats    *statistics.Aggregator
	clock    scheduler.Clock
	dueLimit int
}

// NewService creates a new Service. dueLimit caps how many due subjects a
// single query returns when the caller does not ask for a limit.
func NewService(
	reviews review.Repository,
	progress studyset.ProgressRepository,
	selector *studyset.DueSelector,
	stats *statistics.Aggregator,
	clock scheduler.Clock,
	dueLimit int,
) *Service {
	return &Service{
		reviews:  reviews,
		progress: progress,
		selector: selector,
		stats:    stats,
		clock:    clock,
		dueLimit: dueLimit,
	}
}

// ScheduleNewItem registers a subject for scheduling with default state.
// Registering the same subject twice returns the existing state unchanged.
func (s *Service) ScheduleNewItem(ctx context.Context, userID, contentID int64, kind review.ContentKind) (*review.SchedulingState, error) {
	if !kind.Valid() {
		return nil, review.ErrUnknownContentKind
	}
	return s.reviews.GetOrCreate(ctx, userID, contentID, kind)
}

// RecordReview applies a graded review to a subject. Lock conflicts with a
// concurrent review of the same subject are retried once; any other error
// is returned as is.
func (s *Service) RecordReview(ctx context.Context, userID, contentID int64, kind review.ContentKind, quality scheduler.Quality) (*review.SchedulingState, error) {
	if !kind.Valid() {
		return nil, review.ErrUnknownContentKind
	}
	if !quality.Valid() {
		return nil, scheduler.ErrInvalidQuality
	}

	var state *review.SchedulingState
	err := retry.Do(
		func() error {
			var err error
			state, err = s.reviews.RecordReview(ctx, userID, contentID, kind, quality)
			if err != nil && !database.IsLockConflict(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// GetDueReviews returns the user's due subjects, most overdue first. A
// non-positive limit falls back to the configured default.
func (s *Service) GetDueReviews(ctx context.Context, userID int64, limit int) ([]review.SchedulingState, error) {
	if limit <= 0 {
		limit = s.dueLimit
	}
	return s.reviews.FindDue(ctx, userID, s.clock.Now(), limit)
}

// UpdateMastery applies a mastery-graded review to a knowledge point.
func (s *Service) UpdateMastery(ctx context.Context, userID, knowledgePointID, learningSetID int64, mastery scheduler.Mastery) (*studyset.Progress, error) {
	if !mastery.Valid() {
		return nil, scheduler.ErrInvalidMastery
	}

	var progress *studyset.Progress
	err := retry.Do(
		func() error {
			var err error
			progress, err = s.progress.UpdateMastery(ctx, userID, knowledgePointID, learningSetID, mastery)
			if err != nil && !database.IsLockConflict(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// GetDueForReview returns due knowledge point progress for the user,
// optionally restricted to one study set.
func (s *Service) GetDueForReview(ctx context.Context, userID int64, learningSetID *int64, limit int) ([]studyset.Progress, error) {
	if limit <= 0 {
		limit = s.dueLimit
	}
	return s.progress.FindDueForReview(ctx, userID, learningSetID, limit)
}

// GetDueItems returns the due items of a study set for the user.
func (s *Service) GetDueItems(ctx context.Context, learningSetID, userID int64) ([]studyset.DueItem, error) {
	return s.selector.DueItems(ctx, learningSetID, userID)
}

// GetNextReviewItem returns the study set item the user should review next,
// or nil when nothing in the set is due.
func (s *Service) GetNextReviewItem(ctx context.Context, learningSetID, userID int64) (*studyset.NextReviewItem, error) {
	return s.selector.NextItem(ctx, learningSetID, userID)
}

// GetStudyPriority scores how urgently a subject should be studied now.
func (s *Service) GetStudyPriority(mastery scheduler.Mastery, nextReview time.Time, importance int) float64 {
	return scheduler.StudyPriority(mastery, nextReview, importance, s.clock.Now())
}

// GetRecommendedStudyTime suggests a study duration in whole minutes.
func (s *Service) GetRecommendedStudyTime(mastery scheduler.Mastery, importance int) int {
	return scheduler.RecommendedMinutes(mastery, importance)
}

// GetRetentionEstimate estimates the recall probability of a subject from
// its mastery level, last review time, and ease factor.
func (s *Service) GetRetentionEstimate(mastery scheduler.Mastery, lastReviewed *time.Time, easeFactor float64) float64 {
	if lastReviewed == nil {
		return scheduler.RetentionEstimate(mastery, 0, easeFactor)
	}
	days := s.clock.Now().Sub(*lastReviewed).Hours() / 24
	return scheduler.RetentionEstimate(mastery, days, easeFactor)
}

// GetReviewStatistics returns the user's workload overview.
func (s *Service) GetReviewStatistics(ctx context.Context, userID int64) (*statistics.Overview, error) {
	return s.stats.Overview(ctx, userID)
}

// GetLearningStreak returns the user's current learning streak in days.
func (s *Service) GetLearningStreak(ctx context.Context, userID int64) (int, error) {
	return s.stats.LearningStreak(ctx, userID)
}

// GetDailySummary returns today's review activity and upcoming load.
func (s *Service) GetDailySummary(ctx context.Context, userID int64) (*statistics.DailySummary, error) {
	return s.stats.DailySummary(ctx, userID)
}

// GetWeeklySummary returns the current week's per-day review breakdown.
func (s *Service) GetWeeklySummary(ctx context.Context, userID int64) (*statistics.WeeklySummary, error) {
	return s.stats.WeeklySummary(ctx, userID)
}

// GetDueReminders classifies the user's subjects into reminders. The whole
// state is loaded rather than only what is already due, because the
// due-soon window reaches ahead of now.
func (s *Service) GetDueReminders(ctx context.Context, userID int64) ([]reminder.Reminder, error) {
	states, err := s.reviews.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reminder.Classify(states, s.clock.Now()), nil
}
