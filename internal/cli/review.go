package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mnemora/mnemora/internal/review"
	"github.com/mnemora/mnemora/internal/scheduler"
)

// RunSchedule registers a subject for scheduling. Registering an already
// scheduled subject is harmless and prints its current state.
func RunSchedule(ctx context.Context, service SchedulingService, out io.Writer, userID, contentID int64, kind review.ContentKind) error {
	state, err := service.ScheduleNewItem(ctx, userID, contentID, kind)
	if err != nil {
		return fmt.Errorf("schedule subject: %w", err)
	}

	fmt.Fprintf(out, "Scheduled %s #%d: next review %s\n",
		state.ContentKind, state.ContentID, formatNextReview(state.NextReview))
	return nil
}

// RunReview grades one review and prints the updated schedule.
func RunReview(ctx context.Context, service SchedulingService, out io.Writer, userID, contentID int64, kind review.ContentKind, quality scheduler.Quality) error {
	state, err := service.RecordReview(ctx, userID, contentID, kind, quality)
	if err != nil {
		return fmt.Errorf("record review: %w", err)
	}

	if quality.Successful() {
		color.New(color.FgGreen).Fprintf(out, "Recorded quality %d.\n", quality)
	} else {
		color.New(color.FgRed).Fprintf(out, "Recorded quality %d. Interval reset.\n", quality)
	}
	fmt.Fprintf(out, "Ease %.2f, interval %d day(s), next review %s\n",
		state.EaseFactor, state.IntervalDays, formatNextReview(state.NextReview))
	return nil
}
