package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/mnemora/mnemora/internal/config"
	"github.com/mnemora/mnemora/internal/database"
	"github.com/mnemora/mnemora/internal/review"
	"github.com/mnemora/mnemora/internal/scheduler"
	"github.com/mnemora/mnemora/internal/scheduling"
	"github.com/mnemora/mnemora/internal/statistics"
	"github.com/mnemora/mnemora/internal/studyset"
)

var configFile string

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "mnemora",
		Short:         "Spaced repetition scheduling engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newScheduleCommand(),
		newReviewCommand(),
		newDueCommand(),
		newPointsCommand(),
		newItemsCommand(),
		newNextCommand(),
		newMasteryCommand(),
		newStatsCommand(),
		newStreakCommand(),
		newSummaryCommand(),
		newRemindCommand(),
		newMigrateCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// newService wires the scheduling engine against the configured database.
// The caller closes the returned connection.
func newService() (*scheduling.Service, *sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	clock := scheduler.SystemClock{}
	reviews := review.NewDBRepository(db, clock)
	points := studyset.NewDBKnowledgePointRepository(db)
	progress := studyset.NewDBProgressRepository(db, clock)
	service := scheduling.NewService(
		reviews,
		progress,
		studyset.NewDueSelector(points, progress, clock),
		statistics.NewAggregator(statistics.NewDBRepository(db), clock),
		clock,
		cfg.Scheduler.DueLimit,
	)
	return service, db, nil
}
