package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/mnemora/mnemora/internal/review"
	"github.com/mnemora/mnemora/internal/scheduler"
)

// Daemon periodically scans for users with due reviews and logs their
// reminders. Delivery to a notification channel happens downstream; the
// daemon's job is classification on a schedule.
type Daemon struct {
	reviews  review.Repository
	clock    scheduler.Clock
	logger   *slog.Logger
	dueLimit int
	cron     *cron.Cron
}

// NewDaemon creates a new Daemon.
func NewDaemon(reviews review.Repository, clock scheduler.Clock, logger *slog.Logger, dueLimit int) *Daemon {
	return &Daemon{
		reviews:  reviews,
		clock:    clock,
		logger:   logger,
		dueLimit: dueLimit,
		cron:     cron.New(),
	}
}

// Start registers the scan on the given cron spec and starts the scheduler.
func (d *Daemon) Start(ctx context.Context, cronSpec string) error {
	if _, err := d.cron.AddFunc(cronSpec, func() {
		if err := d.RunOnce(ctx); err != nil {
			d.logger.Error("reminder scan failed", slog.Any("error", err))
		}
	}); err != nil {
		return fmt.Errorf("schedule reminder scan: %w", err)
	}
	d.cron.Start()
	d.logger.Info("reminder daemon started", slog.String("cron", cronSpec))
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (d *Daemon) Stop() {
	<-d.cron.Stop().Done()
	d.logger.Info("reminder daemon stopped")
}

// RunOnce scans every user with a review inside the reminder horizon and
// logs their classified reminders. The scan looks ahead as far as the
// due-soon window so upcoming reviews produce reminders too.
func (d *Daemon) RunOnce(ctx context.Context) error {
	now := d.clock.Now()
	horizon := now.Add(dueSoonAhead)
	userIDs, err := d.reviews.FindUsersWithDue(ctx, horizon)
	if err != nil {
		return fmt.Errorf("find users with due reviews: %w", err)
	}

	for _, userID := range userIDs {
		states, err := d.reviews.FindDue(ctx, userID, horizon, d.dueLimit)
		if err != nil {
			return fmt.Errorf("find due reviews: %w", err)
		}

		for _, r := range Classify(states, now) {
			d.logger.Info("review reminder",
				slog.Int64("user_id", r.UserID),
				slog.Int64("content_id", r.ContentID),
				slog.String("content_kind", string(r.ContentKind)),
				slog.String("kind", string(r.Kind)),
				slog.String("severity", string(r.Severity)),
				slog.Int("hours", r.Hours),
			)
		}
	}
	return nil
}
