package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// RunDue prints the user's due review subjects, most overdue first, with
// the current retention estimate per subject.
func RunDue(ctx context.Context, service SchedulingService, out io.Writer, userID int64, limit int) error {
	states, err := service.GetDueReviews(ctx, userID, limit)
	if err != nil {
		return fmt.Errorf("load due reviews: %w", err)
	}

	if len(states) == 0 {
		color.New(color.FgGreen).Fprintln(out, "Nothing due. All caught up!")
		return nil
	}

	fmt.Fprintf(out, "%d subject(s) due:\n", len(states))
	for _, state := range states {
		retention := service.GetRetentionEstimate(state.Mastery, state.LastReviewed, state.EaseFactor)
		fmt.Fprintf(out, "  %s #%d  mastery=%s  ease=%.2f  retention=%.0f%%  due=%s\n",
			state.ContentKind, state.ContentID, state.Mastery,
			state.EaseFactor, retention*100, formatNextReview(state.NextReview))
	}
	return nil
}

// RunDueForReview prints due knowledge points, optionally limited to one
// study set.
func RunDueForReview(ctx context.Context, service SchedulingService, out io.Writer, userID int64, learningSetID *int64, limit int) error {
	rows, err := service.GetDueForReview(ctx, userID, learningSetID, limit)
	if err != nil {
		return fmt.Errorf("load due knowledge points: %w", err)
	}

	if len(rows) == 0 {
		color.New(color.FgGreen).Fprintln(out, "No knowledge points due.")
		return nil
	}

	fmt.Fprintf(out, "%d knowledge point(s) due:\n", len(rows))
	for _, row := range rows {
		fmt.Fprintf(out, "  point #%d (set #%d)  mastery=%s  ease=%.2f  due=%s\n",
			row.KnowledgePointID, row.LearningSetID, row.Mastery,
			row.EaseFactor, formatNextReview(row.NextReview))
	}
	return nil
}
