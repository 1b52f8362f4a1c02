package studyset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mnemora/mnemora/internal/database"
	"github.com/mnemora/mnemora/internal/scheduler"
)

// KnowledgePointRepository defines read access to study set contents.
type KnowledgePointRepository interface {
	FindBySet(ctx context.Context, learningSetID int64) ([]KnowledgePoint, error)
}

// ProgressRepository defines operations for managing knowledge point
// scheduling state.
type ProgressRepository interface {
	GetOrCreate(ctx context.Context, userID, knowledgePointID, learningSetID int64) (*Progress, error)
	UpdateMastery(ctx context.Context, userID, knowledgePointID, learningSetID int64, mastery scheduler.Mastery) (*Progress, error)
	FindDueForReview(ctx context.Context, userID int64, learningSetID *int64, limit int) ([]Progress, error)
	FindByUserAndSet(ctx context.Context, userID, learningSetID int64) ([]Progress, error)
}

// DBKnowledgePointRepository implements KnowledgePointRepository using MySQL.
type DBKnowledgePointRepository struct {
	db *sqlx.DB
}

// NewDBKnowledgePointRepository creates a new DBKnowledgePointRepository.
func NewDBKnowledgePointRepository(db *sqlx.DB) *DBKnowledgePointRepository {
	return &DBKnowledgePointRepository{db: db}
}

// CreateBatch inserts knowledge points into a study set with a single
// statement.
func (r *DBKnowledgePointRepository) CreateBatch(ctx context.Context, learningSetID int64, points []KnowledgePoint) error {
	if len(points) == 0 {
		return nil
	}

	query := database.BuildMultiRowInsert("knowledge_points",
		[]string{"learning_set_id", "title", "importance"}, len(points))
	args := make([]interface{}, 0, len(points)*3)
	for _, point := range points {
		args = append(args, learningSetID, point.Title, point.Importance)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create knowledge points: %w", err)
	}
	return nil
}

// FindBySet returns all knowledge points of a study set.
func (r *DBKnowledgePointRepository) FindBySet(ctx context.Context, learningSetID int64) ([]KnowledgePoint, error) {
	var points []KnowledgePoint
	if err := r.db.SelectContext(ctx, &points,
		"SELECT * FROM knowledge_points WHERE learning_set_id = ? ORDER BY id", learningSetID); err != nil {
		return nil, fmt.Errorf("load knowledge points: %w", err)
	}
	return points, nil
}

// DBProgressRepository implements ProgressRepository using MySQL.
type DBProgressRepository struct {
	db    *sqlx.DB
	clock scheduler.Clock
}

// NewDBProgressRepository creates a new DBProgressRepository.
func NewDBProgressRepository(db *sqlx.DB, clock scheduler.Clock) *DBProgressRepository {
	return &DBProgressRepository{db: db, clock: clock}
}

// GetOrCreate returns the progress row for a (user, knowledge point, set)
// triple, creating it with default values if absent. The knowledge point
// must exist in the study set.
func (r *DBProgressRepository) GetOrCreate(ctx context.Context, userID, knowledgePointID, learningSetID int64) (*Progress, error) {
	if err := r.checkKnowledgePoint(ctx, r.db, knowledgePointID, learningSetID); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO knowledge_point_progress
			(user_id, knowledge_point_id, learning_set_id, mastery, review_count, ease_factor, interval_days, next_review, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, 1, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`,
		userID, knowledgePointID, learningSetID, scheduler.MasteryNotLearned,
		scheduler.DefaultEaseFactor, scheduler.NextReviewAt(now, 1), now, now); err != nil {
		return nil, fmt.Errorf("create knowledge point progress: %w", err)
	}

	return r.find(ctx, r.db, userID, knowledgePointID, learningSetID, false)
}

// UpdateMastery applies a mastery-graded review to a knowledge point inside
// a single transaction, locking the progress row so concurrent updates of
// the same triple are serialized. The mastery level is mapped onto the
// quality scale and runs through the same interval calculation as a
// quality-graded review.
func (r *DBProgressRepository) UpdateMastery(ctx context.Context, userID, knowledgePointID, learningSetID int64, mastery scheduler.Mastery) (*Progress, error) {
	if !mastery.Valid() {
		return nil, scheduler.ErrInvalidMastery
	}

	var progress *Progress
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := r.checkKnowledgePoint(ctx, tx, knowledgePointID, learningSetID); err != nil {
			return err
		}

		locked, err := r.find(ctx, tx, userID, knowledgePointID, learningSetID, true)
		if errors.Is(err, ErrProgressNotFound) {
			if err := r.insertDefault(ctx, tx, userID, knowledgePointID, learningSetID); err != nil {
				return err
			}
			locked, err = r.find(ctx, tx, userID, knowledgePointID, learningSetID, true)
		}
		if err != nil {
			return err
		}

		result, err := scheduler.ReviewMastery(mastery, locked.SchedulerState())
		if err != nil {
			return err
		}

		now := r.clock.Now()
		locked.Mastery = mastery
		locked.EaseFactor = result.EaseFactor
		locked.IntervalDays = result.IntervalDays
		locked.ReviewCount++
		locked.LastReviewed = &now
		locked.NextReview = scheduler.NextReviewAt(now, result.IntervalDays)
		locked.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`UPDATE knowledge_point_progress
			SET mastery = ?, review_count = ?, ease_factor = ?, interval_days = ?, last_reviewed = ?, next_review = ?, updated_at = ?
			WHERE id = ?`,
			locked.Mastery, locked.ReviewCount, locked.EaseFactor, locked.IntervalDays,
			locked.LastReviewed, locked.NextReview, locked.UpdatedAt, locked.ID); err != nil {
			return fmt.Errorf("update knowledge point progress: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO review_logs (user_id, content_id, content_kind, learning_set_id, quality, interval_days, ease_factor, reviewed_at)
			VALUES (?, ?, 'knowledge_point', ?, ?, ?, ?, ?)`,
			userID, knowledgePointID, learningSetID, int(mastery.Quality()),
			locked.IntervalDays, locked.EaseFactor, now); err != nil {
			return fmt.Errorf("insert review log: %w", err)
		}

		progress = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// FindDueForReview returns due progress rows for a user, most overdue
// first, optionally restricted to one study set.
func (r *DBProgressRepository) FindDueForReview(ctx context.Context, userID int64, learningSetID *int64, limit int) ([]Progress, error) {
	query := "SELECT * FROM knowledge_point_progress WHERE user_id = ? AND next_review <= ?"
	args := []interface{}{userID, r.clock.Now()}
	if learningSetID != nil {
		query += " AND learning_set_id = ?"
		args = append(args, *learningSetID)
	}
	query += " ORDER BY next_review ASC LIMIT ?"
	args = append(args, limit)

	var rows []Progress
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("load due knowledge point progress: %w", err)
	}
	return rows, nil
}

// FindByUserAndSet returns all progress rows of a user within one study set.
func (r *DBProgressRepository) FindByUserAndSet(ctx context.Context, userID, learningSetID int64) ([]Progress, error) {
	var rows []Progress
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM knowledge_point_progress WHERE user_id = ? AND learning_set_id = ?",
		userID, learningSetID); err != nil {
		return nil, fmt.Errorf("load knowledge point progress: %w", err)
	}
	return rows, nil
}

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (r *DBProgressRepository) checkKnowledgePoint(ctx context.Context, q queryer, knowledgePointID, learningSetID int64) error {
	var id int64
	err := q.GetContext(ctx, &id,
		"SELECT id FROM knowledge_points WHERE id = ? AND learning_set_id = ?",
		knowledgePointID, learningSetID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrKnowledgePointNotFound
	}
	if err != nil {
		return fmt.Errorf("check knowledge point: %w", err)
	}
	return nil
}

func (r *DBProgressRepository) find(ctx context.Context, q queryer, userID, knowledgePointID, learningSetID int64, forUpdate bool) (*Progress, error) {
	query := "SELECT * FROM knowledge_point_progress WHERE user_id = ? AND knowledge_point_id = ? AND learning_set_id = ?"
	if forUpdate {
		query += " FOR UPDATE"
	}

	var progress Progress
	if err := q.GetContext(ctx, &progress, query, userID, knowledgePointID, learningSetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("load knowledge point progress: %w", err)
	}
	return &progress, nil
}

func (r *DBProgressRepository) insertDefault(ctx context.Context, tx *sqlx.Tx, userID, knowledgePointID, learningSetID int64) error {
	now := r.clock.Now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO knowledge_point_progress
			(user_id, knowledge_point_id, learning_set_id, mastery, review_count, ease_factor, interval_days, next_review, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, 1, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`,
		userID, knowledgePointID, learningSetID, scheduler.MasteryNotLearned,
		scheduler.DefaultEaseFactor, scheduler.NextReviewAt(now, 1), now, now); err != nil {
		return fmt.Errorf("create knowledge point progress: %w", err)
	}
	return nil
}
