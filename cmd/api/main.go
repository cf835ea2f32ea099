package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-interview-tracker/config"
	_ "go-interview-tracker/docs" // Important for Swagger
	v1 "go-interview-tracker/internal/delivery/http/v1"
	"go-interview-tracker/internal/repository/postgres"
	"go-interview-tracker/internal/usecase"
	"go-interview-tracker/pkg/database"
	"go-interview-tracker/pkg/logger"
	"go-interview-tracker/pkg/redis"
	"go-interview-tracker/pkg/storage"
	"go-interview-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Interview Tracker API
// @version         1.0
// @description     Backend for scheduling and tracking job interviews using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting interview tracker backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Recording Storage
	var recordings storage.RecordingStore
	if cfg.UseS3() {
		recordings, err = storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			KeyPrefix:       "interview_recordings",
		})
		if err != nil {
			logger.Log.Error("Failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Recording storage: S3", "bucket", cfg.S3Bucket)
	} else {
		recordings, err = storage.NewLocalStore(cfg.RecordingDir)
		if err != nil {
			logger.Log.Error("Failed to initialize local storage", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Recording storage: local directory", "dir", cfg.RecordingDir)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	positionRepo := postgres.NewPositionRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	studentRepo := postgres.NewStudentRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	positionUC := usecase.NewPositionUsecase(positionRepo, companyRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, companyRepo, positionRepo, recordings, validate)
	dashboardUC := usecase.NewDashboardUsecase(interviewRepo)
	studentUC := usecase.NewStudentUsecase(studentRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		PositionUC:  positionUC,
		InterviewUC: interviewUC,
		DashboardUC: dashboardUC,
		StudentUC:   studentUC,
		UserRepo:    userRepo,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
