package studyset

import (
	"context"
	"fmt"
	"sort"

	"github.com/mnemora/mnemora/internal/scheduler"
)

// DueSelector joins the knowledge points of a study set with their
// per-user progress and ranks what should be reviewed next.
type DueSelector struct {
	points   KnowledgePointRepository
	progress ProgressRepository
	clock    scheduler.Clock
}

// NewDueSelector creates a new DueSelector.
func NewDueSelector(points KnowledgePointRepository, progress ProgressRepository, clock scheduler.Clock) *DueSelector {
	return &DueSelector{points: points, progress: progress, clock: clock}
}

// DueItems returns the items of a study set that are due for the user.
// A knowledge point without any progress row is due by definition: never
// being scheduled must not hide an item from review.
func (s *DueSelector) DueItems(ctx context.Context, learningSetID, userID int64) ([]DueItem, error) {
	points, err := s.points.FindBySet(ctx, learningSetID)
	if err != nil {
		return nil, fmt.Errorf("select due items: %w", err)
	}

	rows, err := s.progress.FindByUserAndSet(ctx, userID, learningSetID)
	if err != nil {
		return nil, fmt.Errorf("select due items: %w", err)
	}
	byPoint := make(map[int64]*Progress, len(rows))
	for i := range rows {
		byPoint[rows[i].KnowledgePointID] = &rows[i]
	}

	now := s.clock.Now()
	var due []DueItem
	for _, point := range points {
		progress := byPoint[point.ID]
		if progress == nil {
			due = append(due, DueItem{KnowledgePoint: point})
			continue
		}
		if scheduler.IsDue(now, progress.NextReview) {
			due = append(due, DueItem{KnowledgePoint: point, Progress: progress})
		}
	}
	return due, nil
}

// NextItem picks the due item with the highest study priority. Ties break
// toward the earliest next review, with never-scheduled items ranked most
// urgent. Returns nil when nothing in the set is due.
func (s *DueSelector) NextItem(ctx context.Context, learningSetID, userID int64) (*NextReviewItem, error) {
	due, err := s.DueItems(ctx, learningSetID, userID)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, nil
	}

	now := s.clock.Now()
	priorities := make([]float64, len(due))
	for i, item := range due {
		priorities[i] = scheduler.StudyPriority(item.Mastery(), item.NextReview(), item.KnowledgePoint.Importance, now)
	}

	order := make([]int, len(due))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if priorities[i] != priorities[j] {
			return priorities[i] > priorities[j]
		}
		// Equal priority: never-scheduled first, then earliest due.
		ni, nj := due[i].NextReview(), due[j].NextReview()
		if ni.IsZero() != nj.IsZero() {
			return ni.IsZero()
		}
		return ni.Before(nj)
	})

	best := order[0]
	item := due[best]
	return &NextReviewItem{
		Item:               item,
		Priority:           priorities[best],
		RecommendedMinutes: scheduler.RecommendedMinutes(item.Mastery(), item.KnowledgePoint.Importance),
		RemainingCount:     len(due) - 1,
	}, nil
}
