package studyset

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemora/mnemora/internal/scheduler"
)

var progressColumns = []string{
	"id", "user_id", "knowledge_point_id", "learning_set_id", "mastery", "review_count",
	"ease_factor", "interval_days", "last_reviewed", "next_review", "created_at", "updated_at",
}

func newTestProgressRepository(t *testing.T, now time.Time) (*DBProgressRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "mysql")
	return NewDBProgressRepository(sqlxDB, scheduler.FixedClock{Time: now}), mock
}

func TestDBProgressRepository_UpdateMastery(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	expectKnowledgePointExists := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT id FROM knowledge_points").
			WithArgs(int64(11), int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	}

	tests := []struct {
		name             string
		mastery          scheduler.Mastery
		setupMock        func(mock sqlmock.Sqlmock)
		expectedEase     float64
		expectedInterval int
		wantErr          error
	}{
		{
			name:    "mastered grades like a perfect recall",
			mastery: scheduler.MasteryMastered,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectKnowledgePointExists(mock)
				mock.ExpectQuery("SELECT \\* FROM knowledge_point_progress .* FOR UPDATE").
					WithArgs(int64(7), int64(11), int64(3)).
					WillReturnRows(sqlmock.NewRows(progressColumns).
						AddRow(1, 7, 11, 3, 1, 2, 2.5, 6, now.Add(-6*24*time.Hour), now, now, now))
				mock.ExpectExec("UPDATE knowledge_point_progress").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO review_logs").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expectedEase:     2.6,
			expectedInterval: 16, // ceil(6 * 2.6), identical to a quality-5 review
		},
		{
			name:    "not learned resets the interval",
			mastery: scheduler.MasteryNotLearned,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectKnowledgePointExists(mock)
				mock.ExpectQuery("SELECT \\* FROM knowledge_point_progress .* FOR UPDATE").
					WithArgs(int64(7), int64(11), int64(3)).
					WillReturnRows(sqlmock.NewRows(progressColumns).
						AddRow(1, 7, 11, 3, 2, 5, 2.5, 30, now.Add(-30*24*time.Hour), now, now, now))
				mock.ExpectExec("UPDATE knowledge_point_progress").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO review_logs").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expectedEase:     1.7, // quality 0 penalty
			expectedInterval: 1,
		},
		{
			name:    "missing progress row is created first",
			mastery: scheduler.MasteryLearning,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectKnowledgePointExists(mock)
				mock.ExpectQuery("SELECT \\* FROM knowledge_point_progress .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(progressColumns))
				mock.ExpectExec("INSERT INTO knowledge_point_progress").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT \\* FROM knowledge_point_progress .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(progressColumns).
						AddRow(1, 7, 11, 3, 0, 0, 2.5, 1, nil, now.Add(24*time.Hour), now, now))
				mock.ExpectExec("UPDATE knowledge_point_progress").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO review_logs").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expectedEase:     2.36, // quality 3
			expectedInterval: 1,
		},
		{
			name:    "unknown knowledge point reference",
			mastery: scheduler.MasteryLearning,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM knowledge_points").
					WithArgs(int64(11), int64(3)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: ErrKnowledgePointNotFound,
		},
		{
			name:      "invalid mastery is rejected before any query",
			mastery:   scheduler.Mastery(3),
			setupMock: func(mock sqlmock.Sqlmock) {},
			wantErr:   scheduler.ErrInvalidMastery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProgressRepository(t, now)
			tt.setupMock(mock)

			got, err := repo.UpdateMastery(context.Background(), 7, 11, 3, tt.mastery)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.mastery, got.Mastery)
			assert.InDelta(t, tt.expectedEase, got.EaseFactor, 0.001)
			assert.Equal(t, tt.expectedInterval, got.IntervalDays)
			require.NotNil(t, got.LastReviewed)
			assert.Equal(t, scheduler.NextReviewAt(now, tt.expectedInterval), got.NextReview)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBKnowledgePointRepository_CreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewDBKnowledgePointRepository(sqlx.NewDb(db, "mysql"))

	t.Run("inserts all points in one statement", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO knowledge_points \\(learning_set_id, title, importance\\) VALUES \\(\\?, \\?, \\?\\), \\(\\?, \\?, \\?\\)").
			WithArgs(int64(3), "mitosis", 4, int64(3), "meiosis", 4).
			WillReturnResult(sqlmock.NewResult(1, 2))

		err := repo.CreateBatch(context.Background(), 3, []KnowledgePoint{
			{Title: "mitosis", Importance: 4},
			{Title: "meiosis", Importance: 4},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.CreateBatch(context.Background(), 3, nil))
	})
}

func TestDBProgressRepository_FindDueForReview(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	setID := int64(3)

	tests := []struct {
		name          string
		learningSetID *int64
		setupMock     func(mock sqlmock.Sqlmock)
		wantLen       int
		wantErr       bool
	}{
		{
			name:          "across all sets",
			learningSetID: nil,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressColumns).
					AddRow(1, 7, 11, 3, 0, 1, 2.36, 1, now.Add(-48*time.Hour), now.Add(-24*time.Hour), now, now).
					AddRow(2, 7, 12, 4, 1, 2, 2.5, 6, now.Add(-7*24*time.Hour), now.Add(-time.Hour), now, now)
				mock.ExpectQuery("SELECT \\* FROM knowledge_point_progress WHERE user_id = \\? AND next_review <= \\? ORDER BY next_review ASC LIMIT \\?").
					WithArgs(int64(7), now, 10).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name:          "filtered to one set",
			learningSetID: &setID,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressColumns).
					AddRow(1, 7, 11, 3, 0, 1, 2.36, 1, now.Add(-48*time.Hour), now.Add(-24*time.Hour), now, now)
				mock.ExpectQuery("SELECT \\* FROM knowledge_point_progress WHERE user_id = \\? AND next_review <= \\? AND learning_set_id = \\? ORDER BY next_review ASC LIMIT \\?").
					WithArgs(int64(7), now, setID, 10).
					WillReturnRows(rows)
			},
			wantLen: 1,
		},
		{
			name:          "db error",
			learningSetID: nil,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM knowledge_point_progress").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProgressRepository(t, now)
			tt.setupMock(mock)

			got, err := repo.FindDueForReview(context.Background(), 7, tt.learningSetID, 10)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
