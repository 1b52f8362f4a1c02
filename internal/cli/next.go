package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// RunNext prints the study set item the user should review next, with its
// priority and recommended study time.
func RunNext(ctx context.Context, service SchedulingService, out io.Writer, learningSetID, userID int64) error {
	next, err := service.GetNextReviewItem(ctx, learningSetID, userID)
	if err != nil {
		return fmt.Errorf("pick next review item: %w", err)
	}

	if next == nil {
		color.New(color.FgGreen).Fprintln(out, "Nothing due in this set.")
		return nil
	}

	point := next.Item.KnowledgePoint
	color.New(color.FgCyan).Fprintf(out, "Next: %s (point #%d)\n", point.Title, point.ID)
	fmt.Fprintf(out, "  mastery=%s  priority=%.1f  recommended=%d min  remaining=%d\n",
		next.Item.Mastery(), next.Priority, next.RecommendedMinutes, next.RemainingCount)
	return nil
}

// RunItems prints every due item of a study set.
func RunItems(ctx context.Context, service SchedulingService, out io.Writer, learningSetID, userID int64) error {
	items, err := service.GetDueItems(ctx, learningSetID, userID)
	if err != nil {
		return fmt.Errorf("load due items: %w", err)
	}

	if len(items) == 0 {
		color.New(color.FgGreen).Fprintln(out, "Nothing due in this set.")
		return nil
	}

	fmt.Fprintf(out, "%d item(s) due:\n", len(items))
	for _, item := range items {
		fmt.Fprintf(out, "  %s (point #%d)  mastery=%s  due=%s\n",
			item.KnowledgePoint.Title, item.KnowledgePoint.ID,
			item.Mastery(), formatNextReview(item.NextReview()))
	}
	return nil
}

// RunMastery applies a mastery grade to a knowledge point and prints the
// new schedule.
func RunMastery(ctx context.Context, service SchedulingService, out io.Writer, userID, knowledgePointID, learningSetID int64, level string) error {
	mastery, err := ParseMastery(level)
	if err != nil {
		return err
	}

	progress, err := service.UpdateMastery(ctx, userID, knowledgePointID, learningSetID, mastery)
	if err != nil {
		return fmt.Errorf("update mastery: %w", err)
	}

	fmt.Fprintf(out, "Point #%d is now %s. Ease %.2f, interval %d day(s), next review %s\n",
		progress.KnowledgePointID, progress.Mastery, progress.EaseFactor,
		progress.IntervalDays, formatNextReview(progress.NextReview))
	return nil
}
