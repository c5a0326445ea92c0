package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fittrack/tracker/internal/api"
	"fittrack/tracker/internal/config"
	"fittrack/tracker/internal/logger"
	"fittrack/tracker/internal/repository/mongo"
	"fittrack/tracker/internal/service"
	"fittrack/tracker/internal/storage"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Setup("info")
		log.Fatal().Err(err).Msg("could not load config")
	}
	appLogger := logger.Setup(cfg.Log.Level)
	appLogger.Info().Msg("starting fitness tracker server")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		appLogger.Info().Msg("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			appLogger.Error().Err(err).Msg("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	appLogger.Info().Str("database", cfg.Database.Name).Msg("database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts")); err != nil {
			appLogger.Warn().Err(err).Msg("failed to create workout indexes")
		}
		if err := mongo.EnsureStepIndexes(ctx, appDB.Collection("steps")); err != nil {
			appLogger.Warn().Err(err).Msg("failed to create step indexes")
		}
	}()

	// --- Initialize Repositories ---
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	stepRepo := mongo.NewMongoStepRepository(appDB)

	// --- Initialize Services ---
	workoutService := service.NewWorkoutService(workoutRepo)
	stepService := service.NewStepService(stepRepo)
	statsService := service.NewStatsService(workoutRepo, stepRepo)

	// Snapshot exports only run when a bucket is configured.
	var exportService service.ExportService
	if cfg.S3.ExportEnabled() {
		fileStorage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize S3 storage")
		}
		exportService = service.NewExportService(workoutRepo, stepRepo, fileStorage)
		appLogger.Info().Str("bucket", cfg.S3.BucketName).Msg("snapshot exports enabled")
	} else {
		appLogger.Info().Msg("snapshot exports disabled: no bucket configured")
	}

	// --- Initialize Gin Engine ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(api.RequestID(), api.RequestLogger(appLogger), gin.Recovery())

	// --- Setup Routes ---
	api.SetupRoutes(router, appLogger, workoutService, stepService, statsService, exportService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	appLogger.Info().Str("address", cfg.Server.Address).Msg("server starting")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen and serve error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info().Msg("shutting down server")

	// Give in-flight requests five seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exiting")
}
