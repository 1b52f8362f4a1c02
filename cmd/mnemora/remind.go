package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mnemora/mnemora/internal/bootstrap"
	"github.com/mnemora/mnemora/internal/cli"
	"github.com/mnemora/mnemora/internal/database"
	"github.com/mnemora/mnemora/internal/reminder"
	"github.com/mnemora/mnemora/internal/review"
	"github.com/mnemora/mnemora/internal/scheduler"
)

func newRemindCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show review reminders and milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunRemind(cmd.Context(), service, cmd.OutOrStdout(), userID)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	markRequired(cmd, "user")

	cmd.AddCommand(newRemindDaemonCommand())

	return cmd
}

func newRemindDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the reminder daemon on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(cmd.Context())
		},
	}
}

func runDaemon(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	clock := scheduler.SystemClock{}
	daemon := reminder.NewDaemon(
		review.NewDBRepository(db, clock),
		clock,
		slog.Default(),
		cfg.Scheduler.DueLimit,
	)
	app.AddShutdownHook(func(ctx context.Context) error {
		daemon.Stop()
		return nil
	})

	return app.Run(ctx, func(ctx context.Context) error {
		if err := daemon.Start(ctx, cfg.Reminders.CronSpec); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	})
}
