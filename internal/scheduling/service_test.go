package scheduling_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_review "github.com/mnemora/mnemora/internal/mocks/review"
	mock_statistics "github.com/mnemora/mnemora/internal/mocks/statistics"
	mock_studyset "github.com/mnemora/mnemora/internal/mocks/studyset"
	"github.com/mnemora/mnemora/internal/reminder"
	"github.com/mnemora/mnemora/internal/review"
	"github.com/mnemora/mnemora/internal/scheduler"
	"github.com/mnemora/mnemora/internal/scheduling"
	"github.com/mnemora/mnemora/internal/statistics"
	"github.com/mnemora/mnemora/internal/studyset"
)

var serviceNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	reviews  *mock_review.MockRepository
	progress *mock_studyset.MockProgressRepository
	points   *mock_studyset.MockKnowledgePointRepository
	stats    *mock_statistics.MockRepository
}

func newTestService(t *testing.T) (*scheduling.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		reviews:  mock_review.NewMockRepository(ctrl),
		progress: mock_studyset.NewMockProgressRepository(ctrl),
		points:   mock_studyset.NewMockKnowledgePointRepository(ctrl),
		stats:    mock_statistics.NewMockRepository(ctrl),
	}
	clock := scheduler.FixedClock{Time: serviceNow}
	service := scheduling.NewService(
		mocks.reviews,
		mocks.progress,
		studyset.NewDueSelector(mocks.points, mocks.progress, clock),
		statistics.NewAggregator(mocks.stats, clock),
		clock,
		20,
	)
	return service, mocks
}

func TestService_ScheduleNewItem(t *testing.T) {
	t.Run("delegates to the store", func(t *testing.T) {
		service, mocks := newTestService(t)
		expected := &review.SchedulingState{UserID: 7, ContentID: 42, ContentKind: review.ContentKindQuestion}
		mocks.reviews.EXPECT().
			GetOrCreate(gomock.Any(), int64(7), int64(42), review.ContentKindQuestion).
			Return(expected, nil)

		got, err := service.ScheduleNewItem(context.Background(), 7, 42, review.ContentKindQuestion)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("rejects unknown content kinds", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.ScheduleNewItem(context.Background(), 7, 42, review.ContentKind("flashcard"))
		assert.ErrorIs(t, err, review.ErrUnknownContentKind)
	})
}

func TestService_RecordReview(t *testing.T) {
	t.Run("retries once on a lock conflict", func(t *testing.T) {
		service, mocks := newTestService(t)
		expected := &review.SchedulingState{UserID: 7, ContentID: 42}
		deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
		gomock.InOrder(
			mocks.reviews.EXPECT().
				RecordReview(gomock.Any(), int64(7), int64(42), review.ContentKindQuestion, scheduler.Quality(4)).
				Return(nil, fmt.Errorf("record review: %w", deadlock)),
			mocks.reviews.EXPECT().
				RecordReview(gomock.Any(), int64(7), int64(42), review.ContentKindQuestion, scheduler.Quality(4)).
				Return(expected, nil),
		)

		got, err := service.RecordReview(context.Background(), 7, 42, review.ContentKindQuestion, 4)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("does not retry other failures", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.reviews.EXPECT().
			RecordReview(gomock.Any(), int64(7), int64(42), review.ContentKindQuestion, scheduler.Quality(4)).
			Return(nil, fmt.Errorf("connection refused")).
			Times(1)

		_, err := service.RecordReview(context.Background(), 7, 42, review.ContentKindQuestion, 4)
		assert.Error(t, err)
	})

	t.Run("rejects an out of range quality", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.RecordReview(context.Background(), 7, 42, review.ContentKindQuestion, 6)
		assert.ErrorIs(t, err, scheduler.ErrInvalidQuality)
	})
}

func TestService_GetDueReviews(t *testing.T) {
	t.Run("applies the default limit", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.reviews.EXPECT().FindDue(gomock.Any(), int64(7), serviceNow, 20).Return(nil, nil)

		_, err := service.GetDueReviews(context.Background(), 7, 0)
		require.NoError(t, err)
	})

	t.Run("honors an explicit limit", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.reviews.EXPECT().FindDue(gomock.Any(), int64(7), serviceNow, 5).Return(nil, nil)

		_, err := service.GetDueReviews(context.Background(), 7, 5)
		require.NoError(t, err)
	})
}

func TestService_UpdateMastery(t *testing.T) {
	t.Run("delegates valid levels", func(t *testing.T) {
		service, mocks := newTestService(t)
		expected := &studyset.Progress{UserID: 7, KnowledgePointID: 11, Mastery: scheduler.MasteryMastered}
		mocks.progress.EXPECT().
			UpdateMastery(gomock.Any(), int64(7), int64(11), int64(3), scheduler.MasteryMastered).
			Return(expected, nil)

		got, err := service.UpdateMastery(context.Background(), 7, 11, 3, scheduler.MasteryMastered)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("rejects an out of range level", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.UpdateMastery(context.Background(), 7, 11, 3, scheduler.Mastery(3))
		assert.ErrorIs(t, err, scheduler.ErrInvalidMastery)
	})
}

func TestService_GetNextReviewItem(t *testing.T) {
	service, mocks := newTestService(t)
	mocks.points.EXPECT().FindBySet(gomock.Any(), int64(3)).Return([]studyset.KnowledgePoint{
		{ID: 11, LearningSetID: 3, Title: "photosynthesis", Importance: 4},
	}, nil)
	mocks.progress.EXPECT().FindByUserAndSet(gomock.Any(), int64(7), int64(3)).Return(nil, nil)

	got, err := service.GetNextReviewItem(context.Background(), 3, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(11), got.Item.KnowledgePoint.ID)
	assert.Zero(t, got.RemainingCount)
}

func TestService_GetDueReminders(t *testing.T) {
	service, mocks := newTestService(t)
	mocks.reviews.EXPECT().FindByUser(gomock.Any(), int64(7)).Return([]review.SchedulingState{
		{UserID: 7, ContentID: 1, ContentKind: review.ContentKindQuestion, NextReview: serviceNow.Add(-5 * time.Hour)},
		{UserID: 7, ContentID: 2, ContentKind: review.ContentKindQuestion, NextReview: serviceNow.Add(time.Hour)},
		{UserID: 7, ContentID: 3, ContentKind: review.ContentKindQuestion, NextReview: serviceNow.Add(72 * time.Hour)},
	}, nil)

	got, err := service.GetDueReminders(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, reminder.KindOverdue, got[0].Kind)
	assert.Equal(t, 5, got[0].Hours)
	assert.Equal(t, reminder.KindDueSoon, got[1].Kind)
	assert.Equal(t, 1, got[1].Hours)
}

func TestService_DerivedCalculations(t *testing.T) {
	service, _ := newTestService(t)

	priority := service.GetStudyPriority(scheduler.MasteryNotLearned, serviceNow.Add(-2*24*time.Hour), 5)
	assert.InDelta(t, 20.0, priority, 0.01)

	assert.Equal(t, 9, service.GetRecommendedStudyTime(scheduler.MasteryNotLearned, 5))

	lastReviewed := serviceNow.Add(-5 * 24 * time.Hour)
	retention := service.GetRetentionEstimate(scheduler.MasteryMastered, &lastReviewed, 2.5)
	assert.InDelta(t, 0.9*0.3678794, retention, 0.001)

	assert.Zero(t, service.GetRetentionEstimate(scheduler.MasteryNotLearned, nil, 2.5))
}
