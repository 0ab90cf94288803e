package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cherilynwood/dog-enrichment-backend/internal/db"
	"github.com/cherilynwood/dog-enrichment-backend/internal/importer"
	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/utils"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dropDir := utils.GetEnv("ACTIVITY_DROP_DIR", "new_activities", log)
	processedDir := utils.GetEnv("ACTIVITY_PROCESSED_DIR", "processed_activities", log)

	databaseService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = databaseService.AutoMigrateAll(); err != nil {
		log.Error("Database auto migration failed", "error", err)
		os.Exit(1)
	}

	activityRepo := repos.NewActivityRepo(databaseService.DB(), log)

	result, err := importer.New(log, activityRepo, dropDir, processedDir).Run(context.Background())
	if err != nil {
		log.Error("Import failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Processed %d files: %d added, %d skipped\n", result.FilesProcessed, result.Added, result.Skipped)
}
