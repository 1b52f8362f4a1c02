package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mnemora/mnemora/internal/review"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	state := func(contentID int64, nextReview time.Time) review.SchedulingState {
		return review.SchedulingState{
			UserID:      7,
			ContentID:   contentID,
			ContentKind: review.ContentKindQuestion,
			NextReview:  nextReview,
		}
	}

	tests := []struct {
		name     string
		states   []review.SchedulingState
		expected []Reminder
	}{
		{
			name:   "long overdue",
			states: []review.SchedulingState{state(1, now.Add(-3*time.Hour - 30*time.Minute))},
			expected: []Reminder{
				{UserID: 7, ContentID: 1, ContentKind: review.ContentKindQuestion, Kind: KindOverdue, Severity: SeverityHigh, Hours: 3},
			},
		},
		{
			name:   "exactly one hour past due is still due soon",
			states: []review.SchedulingState{state(1, now.Add(-time.Hour))},
			expected: []Reminder{
				{UserID: 7, ContentID: 1, ContentKind: review.ContentKindQuestion, Kind: KindDueSoon, Severity: SeverityMedium, Hours: 0},
			},
		},
		{
			name:   "slightly past due floors at zero hours",
			states: []review.SchedulingState{state(1, now.Add(-30 * time.Minute))},
			expected: []Reminder{
				{UserID: 7, ContentID: 1, ContentKind: review.ContentKindQuestion, Kind: KindDueSoon, Severity: SeverityMedium, Hours: 0},
			},
		},
		{
			name:   "due within the lookahead window",
			states: []review.SchedulingState{state(1, now.Add(90 * time.Minute))},
			expected: []Reminder{
				{UserID: 7, ContentID: 1, ContentKind: review.ContentKindQuestion, Kind: KindDueSoon, Severity: SeverityMedium, Hours: 1},
			},
		},
		{
			name:   "exactly at the lookahead boundary",
			states: []review.SchedulingState{state(1, now.Add(2 * time.Hour))},
			expected: []Reminder{
				{UserID: 7, ContentID: 1, ContentKind: review.ContentKindQuestion, Kind: KindDueSoon, Severity: SeverityMedium, Hours: 2},
			},
		},
		{
			name:   "beyond the lookahead window",
			states: []review.SchedulingState{state(1, now.Add(2*time.Hour + time.Minute))},
		},
		{
			name:   "never scheduled",
			states: []review.SchedulingState{state(1, time.Time{})},
		},
		{
			name: "each subject lands in at most one bucket",
			states: []review.SchedulingState{
				state(1, now.Add(-26*time.Hour)),
				state(2, now.Add(time.Hour)),
				state(3, now.Add(72*time.Hour)),
			},
			expected: []Reminder{
				{UserID: 7, ContentID: 1, ContentKind: review.ContentKindQuestion, Kind: KindOverdue, Severity: SeverityHigh, Hours: 26},
				{UserID: 7, ContentID: 2, ContentKind: review.ContentKindQuestion, Kind: KindDueSoon, Severity: SeverityMedium, Hours: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.states, now))
		})
	}
}

func TestStreakMilestone(t *testing.T) {
	tests := []struct {
		streak   int
		expected int
		hit      bool
	}{
		{streak: 7, expected: 7, hit: true},
		{streak: 365, expected: 365, hit: true},
		{streak: 8, hit: false},
		{streak: 0, hit: false},
	}
	for _, tt := range tests {
		milestone, hit := StreakMilestone(tt.streak)
		assert.Equal(t, tt.hit, hit, "streak %d", tt.streak)
		assert.Equal(t, tt.expected, milestone, "streak %d", tt.streak)
	}
}

func TestReviewMilestone(t *testing.T) {
	tests := []struct {
		total    int
		expected int
		hit      bool
	}{
		{total: 10, expected: 10, hit: true},
		{total: 1000, expected: 1000, hit: true},
		{total: 11, hit: false},
		{total: 999, hit: false},
	}
	for _, tt := range tests {
		milestone, hit := ReviewMilestone(tt.total)
		assert.Equal(t, tt.hit, hit, "total %d", tt.total)
		assert.Equal(t, tt.expected, milestone, "total %d", tt.total)
	}
}
