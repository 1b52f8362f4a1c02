package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mnemora/mnemora/internal/scheduler"
)

// RunStats prints the user's workload overview.
func RunStats(ctx context.Context, service SchedulingService, out io.Writer, userID int64) error {
	overview, err := service.GetReviewStatistics(ctx, userID)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}

	fmt.Fprintf(out, "Items tracked:    %d\n", overview.TotalItems)
	fmt.Fprintf(out, "Reviews recorded: %d\n", overview.TotalReviews)
	fmt.Fprintf(out, "Due today:        %d\n", overview.DueToday)
	fmt.Fprintf(out, "Completed today:  %d\n", overview.CompletedToday)
	fmt.Fprintf(out, "Average ease:     %.2f\n", overview.AverageEaseFactor)
	for _, m := range []scheduler.Mastery{scheduler.MasteryNotLearned, scheduler.MasteryLearning, scheduler.MasteryMastered} {
		fmt.Fprintf(out, "  %-12s %d\n", m.String()+":", overview.MasteryDistribution[m])
	}
	return nil
}

// RunStreak prints the user's learning streak.
func RunStreak(ctx context.Context, service SchedulingService, out io.Writer, userID int64) error {
	streak, err := service.GetLearningStreak(ctx, userID)
	if err != nil {
		return fmt.Errorf("load learning streak: %w", err)
	}

	if streak == 0 {
		fmt.Fprintln(out, "No streak yet. Review something today to start one.")
		return nil
	}
	fmt.Fprintf(out, "Learning streak: %d day(s)\n", streak)
	return nil
}

// RunSummary prints today's summary, or the current week's when weekly is
// set.
func RunSummary(ctx context.Context, service SchedulingService, out io.Writer, userID int64, weekly bool) error {
	if weekly {
		summary, err := service.GetWeeklySummary(ctx, userID)
		if err != nil {
			return fmt.Errorf("load weekly summary: %w", err)
		}

		fmt.Fprintf(out, "Week of %s:\n", summary.WeekStart.Format("2006-01-02"))
		for _, day := range summary.Days {
			fmt.Fprintf(out, "  %s  %s  %d review(s)\n",
				day.Date.Format("2006-01-02"), day.Date.Format("Mon"), day.Reviews)
		}
		fmt.Fprintf(out, "Total %d, average %.1f/day\n", summary.TotalReviews, summary.AveragePerDay)
		return nil
	}

	summary, err := service.GetDailySummary(ctx, userID)
	if err != nil {
		return fmt.Errorf("load daily summary: %w", err)
	}

	fmt.Fprintf(out, "Completed today: %d\n", summary.CompletedToday)
	fmt.Fprintf(out, "Still due today: %d\n", summary.DueToday)
	fmt.Fprintf(out, "Due tomorrow:    %d\n", summary.DueTomorrow)
	switch {
	case summary.CompletionRate >= 100:
		color.New(color.FgGreen).Fprintln(out, "Today's workload is done.")
	default:
		fmt.Fprintf(out, "Completion:      %.0f%%\n", summary.CompletionRate)
	}
	return nil
}
