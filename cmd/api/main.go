package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pathfinder-backend/config"
	_ "pathfinder-backend/docs" // Important for Swagger
	v1 "pathfinder-backend/internal/delivery/http/v1"
	"pathfinder-backend/internal/repository/postgres"
	"pathfinder-backend/internal/usecase"
	"pathfinder-backend/pkg/database"
	"pathfinder-backend/pkg/email"
	"pathfinder-backend/pkg/logger"
	"pathfinder-backend/pkg/redis"
	"pathfinder-backend/pkg/storage"
	"pathfinder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           PathFinder Backend API
// @version         1.0
// @description     Career readiness tracker backend: profiles, documents, sharing and fit scores.
// @host            localhost:8080
// @BasePath        /v1
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
	logger.Log.Info("Starting pathfinder backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Object Storage
	var store storage.Store
	if cfg.S3Bucket != "" {
		store, err = storage.NewS3Store(context.Background(), storage.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to initialize object storage", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("S3 not configured - document uploads will be unavailable")
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	documentRepo := postgres.NewDocumentRepository(dbPool)
	shareRepo := postgres.NewShareRepository(dbPool)
	jobRepo := postgres.NewJobHistoryRepository(dbPool)
	resetRepo := postgres.NewPasswordResetRepository(dbPool)

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - password reset emails will be unavailable")
	}

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, resetRepo, emailService, cfg, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	documentUC := usecase.NewDocumentUsecase(documentRepo, shareRepo, store, cfg.MaxUploadBytes)
	shareUC := usecase.NewShareUsecase(shareRepo, documentRepo, userRepo, validate)
	dashboardUC := usecase.NewDashboardUsecase(profileRepo, documentRepo, shareRepo, jobRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, shareRepo, validate)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		DocumentUC:  documentUC,
		ShareUC:     shareUC,
		DashboardUC: dashboardUC,
		JobUC:       jobUC,
		Config:      cfg,
	})

	// 10. Start Server
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
