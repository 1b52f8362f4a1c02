package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines the read access the aggregator needs.
type Repository interface {
	LoadStates(ctx context.Context, userID int64) ([]ItemState, error)
	LoadReviewTimes(ctx context.Context, userID int64, since time.Time) ([]time.Time, error)
	LoadReviewDays(ctx context.Context, userID int64) ([]time.Time, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// LoadStates returns the scheduling state of every item the user tracks,
// across both the generic review store and the knowledge point store.
func (r *DBRepository) LoadStates(ctx context.Context, userID int64) ([]ItemState, error) {
	var states []ItemState
	if err := r.db.SelectContext(ctx, &states,
		"SELECT mastery, review_count, ease_factor, next_review, last_reviewed FROM review_subjects WHERE user_id = ?",
		userID); err != nil {
		return nil, fmt.Errorf("load review subject states: %w", err)
	}

	var progress []ItemState
	if err := r.db.SelectContext(ctx, &progress,
		"SELECT mastery, review_count, ease_factor, next_review, last_reviewed FROM knowledge_point_progress WHERE user_id = ?",
		userID); err != nil {
		return nil, fmt.Errorf("load knowledge point states: %w", err)
	}
	return append(states, progress...), nil
}

// LoadReviewTimes returns the timestamps of the user's review events at or
// after since, oldest first.
func (r *DBRepository) LoadReviewTimes(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	var times []time.Time
	if err := r.db.SelectContext(ctx, &times,
		"SELECT reviewed_at FROM review_logs WHERE user_id = ? AND reviewed_at >= ? ORDER BY reviewed_at ASC",
		userID, since); err != nil {
		return nil, fmt.Errorf("load review times: %w", err)
	}
	return times, nil
}

// LoadReviewDays returns the distinct calendar days on which the user
// reviewed anything, newest first.
func (r *DBRepository) LoadReviewDays(ctx context.Context, userID int64) ([]time.Time, error) {
	var days []time.Time
	if err := r.db.SelectContext(ctx, &days,
		"SELECT DISTINCT DATE(reviewed_at) AS day FROM review_logs WHERE user_id = ? ORDER BY day DESC",
		userID); err != nil {
		return nil, fmt.Errorf("load review days: %w", err)
	}
	return days, nil
}
