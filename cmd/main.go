package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cherilynwood/dog-enrichment-backend/internal/db"
	"github.com/cherilynwood/dog-enrichment-backend/internal/handlers"
	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/middleware"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/server"
	"github.com/cherilynwood/dog-enrichment-backend/internal/services"
	"github.com/cherilynwood/dog-enrichment-backend/internal/utils"
)

func main() {
	// Logger
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

	// Env
	log.Info("Loading environment variables from main...")
	sessionSecret := utils.GetEnv("SESSION_SECRET", "dog-enrichment-secret-change-me", log)
	sessionTTL := utils.GetEnvAsInt("SESSION_TTL", 30*24*3600, log)

	// Database
	databaseService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = databaseService.AutoMigrateAll(); err != nil {
		log.Error("Database auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := databaseService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	activityRepo := repos.NewActivityRepo(theDB, log)

	// Services
	log.Info("Setting up Services from main...")
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Warn("OpenAI client disabled, falling back to curated activities", "error", err)
		openaiClient = nil
	}
	coachClient := services.NewCoachClient(log)
	sessionService := services.NewSessionService(log, sessionSecret, time.Duration(sessionTTL)*time.Second)
	imageService := services.NewDogImageService(log)
	catalogService := services.NewCatalogService(theDB, log, activityRepo)
	generatorService := services.NewGeneratorService(theDB, log, activityRepo, openaiClient, coachClient)
	chatService := services.NewChatService(theDB, log, activityRepo, openaiClient, coachClient)

	if err := catalogService.EnsureSeeded(context.Background()); err != nil {
		log.Warn("Could not seed activity catalog", "error", err)
	}

	// Handlers
	log.Info("Setting up handlers from main...")
	pageHandler := handlers.NewPageHandler(log, catalogService, imageService)
	activityHandler := handlers.NewActivityHandler(log, generatorService, catalogService, sessionService, imageService)
	chatHandler := handlers.NewChatHandler(log, chatService)

	// Middleware
	log.Info("Setting up middleware from main...")
	sessionMiddleware := middleware.NewSessionMiddleware(log, sessionService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		PageHandler:       pageHandler,
		ActivityHandler:   activityHandler,
		ChatHandler:       chatHandler,
		SessionMiddleware: sessionMiddleware,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
