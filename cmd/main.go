package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hackovate/judging-portal/config"
	"github.com/hackovate/judging-portal/db"
	"github.com/hackovate/judging-portal/handlers"
	"github.com/hackovate/judging-portal/live"
	"github.com/hackovate/judging-portal/repositories"
	"github.com/hackovate/judging-portal/routes"
	"github.com/hackovate/judging-portal/services"
	"github.com/hackovate/judging-portal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 10*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbConn.Close()
	logger.Info("database connection established")

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := db.Migrate(startupCtx, dbConn); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.Seed(startupCtx, dbConn, logger); err != nil {
		logger.Error("failed to seed database", slog.Any("error", err))
		os.Exit(1)
	}

	var uploader storage.FileUploader
	if cfg.LogoUploadsEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("logo uploads enabled")
	} else {
		logger.Info("logo uploads disabled, R2 credentials not configured")
	}

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	evaluatorRepo := repositories.NewPostgresEvaluatorRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	psRepo := repositories.NewPostgresProblemStatementRepository(dbConn)
	roundRepo := repositories.NewPostgresRoundRepository(dbConn)
	parameterRepo := repositories.NewPostgresParameterRepository(dbConn)
	evaluationRepo := repositories.NewPostgresEvaluationRepository(dbConn)

	hub := live.NewHub(logger)
	go hub.Run()

	authService := services.NewAuthService(userRepo)
	evaluatorService := services.NewEvaluatorService(evaluatorRepo)
	teamService := services.NewTeamService(teamRepo, psRepo, uploader)
	psService := services.NewProblemStatementService(psRepo)
	roundService := services.NewRoundService(dbConn, roundRepo)
	parameterService := services.NewParameterService(parameterRepo)
	standingsService := services.NewStandingsService(evaluationRepo, teamRepo, roundRepo, psRepo)
	publisher := live.NewStandingsPublisher(hub, standingsService, logger)
	evaluationService := services.NewEvaluationService(evaluationRepo, parameterRepo, publisher)

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Auth:             handlers.NewAuthHandler(authService),
		Evaluator:        handlers.NewEvaluatorHandler(evaluatorService),
		Team:             handlers.NewTeamHandler(teamService),
		ProblemStatement: handlers.NewProblemStatementHandler(psService),
		Round:            handlers.NewRoundHandler(roundService),
		Parameter:        handlers.NewParameterHandler(parameterService),
		Evaluation:       handlers.NewEvaluationHandler(evaluationService),
		Standings:        handlers.NewStandingsHandler(standingsService),
		WebSocket:        handlers.NewWebSocketHandler(hub, logger),
	}, routes.Options{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		LogoUploads:        cfg.LogoUploadsEnabled(),
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
