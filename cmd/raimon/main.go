package main

import (
	"fmt"
	"os"

	"github.com/nataliatalam/raimon/internal/cli"
	"github.com/nataliatalam/raimon/internal/coaching"
	"github.com/nataliatalam/raimon/internal/db"
	"github.com/nataliatalam/raimon/internal/llm"
	"github.com/nataliatalam/raimon/internal/repository"
	"github.com/nataliatalam/raimon/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}

	// The CLI is single-user by default; RAIMON_USER overrides.
	userID := os.Getenv("RAIMON_USER")
	if userID == "" {
		userID = "local"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	checkinRepo := repository.NewSQLiteCheckinRepo(database)
	activeDoRepo := repository.NewSQLiteActiveDoRepo(database)
	actionRepo := repository.NewSQLiteActionRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	statsRepo := repository.NewSQLiteUserStatsRepo(database)

	// Wire the coaching collaborator (fallback-only when LLM is disabled)
	llmCfg := llm.LoadConfig()
	var coach coaching.CoachService
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		coach = coaching.NewCoachService(llm.NewOllamaClient(llmCfg, observer))
	} else {
		coach = coaching.NewCoachService(nil)
	}

	// Wire services
	donextSvc := service.NewDoNextService(taskRepo, checkinRepo, activeDoRepo, actionRepo, eventRepo, statsRepo, coach)
	checkinSvc := service.NewCheckinService(checkinRepo)
	taskSvc := service.NewTaskService(taskRepo)
	statsSvc := service.NewStatsService(actionRepo, statsRepo)

	app := &cli.App{
		UserID:   userID,
		Tasks:    taskSvc,
		Checkins: checkinSvc,
		Stats:    statsSvc,
		DoNext:   donextSvc,
		Events:   service.NewEventService(donextSvc, checkinSvc, taskSvc, statsSvc, eventRepo, coach),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
