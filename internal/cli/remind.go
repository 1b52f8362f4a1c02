package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mnemora/mnemora/internal/reminder"
)

// RunRemind prints the user's review reminders and any milestone they just
// reached.
func RunRemind(ctx context.Context, service SchedulingService, out io.Writer, userID int64) error {
	reminders, err := service.GetDueReminders(ctx, userID)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}

	for _, r := range reminders {
		switch r.Kind {
		case reminder.KindOverdue:
			color.New(color.FgRed).Fprintf(out, "OVERDUE  %s #%d, %d hour(s) past due\n",
				r.ContentKind, r.ContentID, r.Hours)
		case reminder.KindDueSoon:
			color.New(color.FgYellow).Fprintf(out, "DUE SOON %s #%d, in %d hour(s)\n",
				r.ContentKind, r.ContentID, r.Hours)
		}
	}
	if len(reminders) == 0 {
		color.New(color.FgGreen).Fprintln(out, "No reminders.")
	}

	streak, err := service.GetLearningStreak(ctx, userID)
	if err != nil {
		return fmt.Errorf("load learning streak: %w", err)
	}
	if milestone, ok := reminder.StreakMilestone(streak); ok {
		color.New(color.FgCyan).Fprintf(out, "Milestone: %d-day learning streak!\n", milestone)
	}

	overview, err := service.GetReviewStatistics(ctx, userID)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}
	if milestone, ok := reminder.ReviewMilestone(overview.TotalReviews); ok {
		color.New(color.FgCyan).Fprintf(out, "Milestone: %d reviews recorded!\n", milestone)
	}
	return nil
}
