package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnemora/mnemora/internal/cli"
	"github.com/mnemora/mnemora/internal/database"
	"github.com/mnemora/mnemora/internal/scheduler"
	"github.com/mnemora/mnemora/internal/studyset"
)

func newScheduleCommand() *cobra.Command {
	var userID, contentID int64
	var kind string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Register a subject for spaced repetition",
		RunE: func(cmd *cobra.Command, args []string) error {
			contentKind, err := cli.ParseContentKind(kind)
			if err != nil {
				return err
			}

			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunSchedule(cmd.Context(), service, cmd.OutOrStdout(), userID, contentID, contentKind)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().Int64Var(&contentID, "content", 0, "Content ID")
	cmd.Flags().StringVar(&kind, "kind", "question", "Content kind (question or knowledge_point)")
	markRequired(cmd, "user", "content")

	return cmd
}

func newReviewCommand() *cobra.Command {
	var userID, contentID int64
	var kind string
	var quality int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Record a graded review of a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			contentKind, err := cli.ParseContentKind(kind)
			if err != nil {
				return err
			}

			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunReview(cmd.Context(), service, cmd.OutOrStdout(), userID, contentID, contentKind, scheduler.Quality(quality))
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().Int64Var(&contentID, "content", 0, "Content ID")
	cmd.Flags().StringVar(&kind, "kind", "question", "Content kind (question or knowledge_point)")
	cmd.Flags().IntVar(&quality, "quality", 0, "Recall quality (0-5)")
	markRequired(cmd, "user", "content", "quality")

	return cmd
}

func newDueCommand() *cobra.Command {
	var userID int64
	var limit int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List due review subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunDue(cmd.Context(), service, cmd.OutOrStdout(), userID, limit)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of subjects (0 uses the configured default)")
	markRequired(cmd, "user")

	return cmd
}

func newPointsCommand() *cobra.Command {
	var userID, setID int64
	var limit int

	cmd := &cobra.Command{
		Use:   "points",
		Short: "List due knowledge points, optionally within one study set",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			var learningSetID *int64
			if cmd.Flags().Changed("set") {
				learningSetID = &setID
			}
			return cli.RunDueForReview(cmd.Context(), service, cmd.OutOrStdout(), userID, learningSetID, limit)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().Int64Var(&setID, "set", 0, "Study set ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of points (0 uses the configured default)")
	markRequired(cmd, "user")

	cmd.AddCommand(newPointsAddCommand())

	return cmd
}

func newPointsAddCommand() *cobra.Command {
	var setID int64
	var importance int

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Add knowledge points to a study set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			points := make([]studyset.KnowledgePoint, 0, len(args))
			for _, title := range args {
				points = append(points, studyset.KnowledgePoint{Title: title, Importance: importance})
			}
			repo := studyset.NewDBKnowledgePointRepository(db)
			if err := repo.CreateBatch(cmd.Context(), setID, points); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d knowledge point(s) to set #%d\n", len(points), setID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&setID, "set", 0, "Study set ID")
	cmd.Flags().IntVar(&importance, "importance", 3, "Importance (1-5)")
	markRequired(cmd, "set")

	return cmd
}

func newItemsCommand() *cobra.Command {
	var userID, setID int64

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List due items of a study set",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunItems(cmd.Context(), service, cmd.OutOrStdout(), setID, userID)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().Int64Var(&setID, "set", 0, "Study set ID")
	markRequired(cmd, "user", "set")

	return cmd
}

func newNextCommand() *cobra.Command {
	var userID, setID int64

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Pick the next study set item to review",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunNext(cmd.Context(), service, cmd.OutOrStdout(), setID, userID)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().Int64Var(&setID, "set", 0, "Study set ID")
	markRequired(cmd, "user", "set")

	return cmd
}

func newMasteryCommand() *cobra.Command {
	var userID, pointID, setID int64
	var level string

	cmd := &cobra.Command{
		Use:   "mastery",
		Short: "Grade a knowledge point by mastery level",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunMastery(cmd.Context(), service, cmd.OutOrStdout(), userID, pointID, setID, level)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().Int64Var(&pointID, "point", 0, "Knowledge point ID")
	cmd.Flags().Int64Var(&setID, "set", 0, "Study set ID")
	cmd.Flags().StringVar(&level, "level", "", "Mastery level (not_learned, learning, mastered)")
	markRequired(cmd, "user", "point", "set", "level")

	return cmd
}

func newStatsCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the review workload overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunStats(cmd.Context(), service, cmd.OutOrStdout(), userID)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	markRequired(cmd, "user")

	return cmd
}

func newStreakCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the learning streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunStreak(cmd.Context(), service, cmd.OutOrStdout(), userID)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	markRequired(cmd, "user")

	return cmd
}

func newSummaryCommand() *cobra.Command {
	var userID int64
	var weekly bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show today's summary, or the week's with --weekly",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, db, err := newService()
			if err != nil {
				return err
			}
			defer db.Close()

			return cli.RunSummary(cmd.Context(), service, cmd.OutOrStdout(), userID, weekly)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().BoolVar(&weekly, "weekly", false, "Show the current week instead of today")
	markRequired(cmd, "user")

	return cmd
}

func markRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		cobra.CheckErr(cmd.MarkFlagRequired(flag))
	}
}
