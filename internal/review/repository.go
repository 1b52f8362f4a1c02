package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mnemora/mnemora/internal/database"
	"github.com/mnemora/mnemora/internal/scheduler"
)

// Repository defines operations for managing review subject scheduling state.
type Repository interface {
	GetOrCreate(ctx context.Context, userID, contentID int64, kind ContentKind) (*SchedulingState, error)
	RecordReview(ctx context.Context, userID, contentID int64, kind ContentKind, quality scheduler.Quality) (*SchedulingState, error)
	FindDue(ctx context.Context, userID int64, until time.Time, limit int) ([]SchedulingState, error)
	FindByUser(ctx context.Context, userID int64) ([]SchedulingState, error)
	FindUsersWithDue(ctx context.Context, until time.Time) ([]int64, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db    *sqlx.DB
	clock scheduler.Clock
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB, clock scheduler.Clock) *DBRepository {
	return &DBRepository{db: db, clock: clock}
}

// GetOrCreate returns the scheduling state for a (user, subject) pair,
// creating it with default values if it does not exist yet. Creation is
// idempotent: a concurrent create of the same pair leaves a single row.
func (r *DBRepository) GetOrCreate(ctx context.Context, userID, contentID int64, kind ContentKind) (*SchedulingState, error) {
	if !kind.Valid() {
		return nil, ErrUnknownContentKind
	}

	now := r.clock.Now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_subjects
			(user_id, content_id, content_kind, mastery, review_count, ease_factor, interval_days, next_review, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, 1, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`,
		userID, contentID, kind, scheduler.MasteryNotLearned,
		scheduler.DefaultEaseFactor, scheduler.NextReviewAt(now, 1), now, now)
	if err != nil {
		return nil, fmt.Errorf("create review subject: %w", err)
	}

	return r.find(ctx, r.db, userID, contentID, kind, false)
}

// RecordReview applies one graded review to a subject inside a single
// transaction. The row is locked for the duration of the update, so
// concurrent reviews of the same (user, subject) pair are serialized;
// reviews of different subjects proceed in parallel.
func (r *DBRepository) RecordReview(ctx context.Context, userID, contentID int64, kind ContentKind, quality scheduler.Quality) (*SchedulingState, error) {
	if !kind.Valid() {
		return nil, ErrUnknownContentKind
	}
	if !quality.Valid() {
		return nil, scheduler.ErrInvalidQuality
	}

	var state *SchedulingState
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		locked, err := r.find(ctx, tx, userID, contentID, kind, true)
		if errors.Is(err, ErrSubjectNotFound) {
			if err := r.insertDefault(ctx, tx, userID, contentID, kind); err != nil {
				return err
			}
			locked, err = r.find(ctx, tx, userID, contentID, kind, true)
		}
		if err != nil {
			return err
		}

		result, err := scheduler.Review(quality, locked.SchedulerState())
		if err != nil {
			return err
		}

		now := r.clock.Now()
		locked.EaseFactor = result.EaseFactor
		locked.IntervalDays = result.IntervalDays
		locked.ReviewCount++
		locked.Mastery = MasteryForQuality(quality)
		locked.LastReviewed = &now
		locked.NextReview = scheduler.NextReviewAt(now, result.IntervalDays)
		locked.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`UPDATE review_subjects
			SET mastery = ?, review_count = ?, ease_factor = ?, interval_days = ?, last_reviewed = ?, next_review = ?, updated_at = ?
			WHERE id = ?`,
			locked.Mastery, locked.ReviewCount, locked.EaseFactor, locked.IntervalDays,
			locked.LastReviewed, locked.NextReview, locked.UpdatedAt, locked.ID); err != nil {
			return fmt.Errorf("update review subject: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO review_logs (user_id, content_id, content_kind, quality, interval_days, ease_factor, reviewed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			userID, contentID, kind, int(quality), locked.IntervalDays, locked.EaseFactor, now); err != nil {
			return fmt.Errorf("insert review log: %w", err)
		}

		state = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// FindDue returns subjects whose next review is at or before until, most
// overdue first. Callers pass now for the current workload, or a later
// bound to look ahead.
func (r *DBRepository) FindDue(ctx context.Context, userID int64, until time.Time, limit int) ([]SchedulingState, error) {
	var states []SchedulingState
	if err := r.db.SelectContext(ctx, &states,
		`SELECT * FROM review_subjects
		WHERE user_id = ? AND next_review <= ?
		ORDER BY next_review ASC
		LIMIT ?`,
		userID, until, limit); err != nil {
		return nil, fmt.Errorf("load due review subjects: %w", err)
	}
	return states, nil
}

// FindByUser returns all scheduling states of a user.
func (r *DBRepository) FindByUser(ctx context.Context, userID int64) ([]SchedulingState, error) {
	var states []SchedulingState
	if err := r.db.SelectContext(ctx, &states,
		"SELECT * FROM review_subjects WHERE user_id = ? ORDER BY next_review ASC", userID); err != nil {
		return nil, fmt.Errorf("load review subjects: %w", err)
	}
	return states, nil
}

// FindUsersWithDue returns the users that have at least one subject due at
// or before until. Used by the reminder daemon.
func (r *DBRepository) FindUsersWithDue(ctx context.Context, until time.Time) ([]int64, error) {
	var users []int64
	if err := r.db.SelectContext(ctx, &users,
		"SELECT DISTINCT user_id FROM review_subjects WHERE next_review <= ? ORDER BY user_id", until); err != nil {
		return nil, fmt.Errorf("load users with due subjects: %w", err)
	}
	return users, nil
}

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (r *DBRepository) find(ctx context.Context, q queryer, userID, contentID int64, kind ContentKind, forUpdate bool) (*SchedulingState, error) {
	query := "SELECT * FROM review_subjects WHERE user_id = ? AND content_id = ? AND content_kind = ?"
	if forUpdate {
		query += " FOR UPDATE"
	}

	var state SchedulingState
	if err := q.GetContext(ctx, &state, query, userID, contentID, kind); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("load review subject: %w", err)
	}
	return &state, nil
}

func (r *DBRepository) insertDefault(ctx context.Context, tx *sqlx.Tx, userID, contentID int64, kind ContentKind) error {
	now := r.clock.Now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO review_subjects
			(user_id, content_id, content_kind, mastery, review_count, ease_factor, interval_days, next_review, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, 1, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`,
		userID, contentID, kind, scheduler.MasteryNotLearned,
		scheduler.DefaultEaseFactor, scheduler.NextReviewAt(now, 1), now, now); err != nil {
		return fmt.Errorf("create review subject: %w", err)
	}
	return nil
}
