package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"savium/internal/api"
	"savium/internal/api/handlers"
	"savium/internal/repository"
	"savium/internal/service"
	"savium/pkg/auth"
	"savium/pkg/config"
	"savium/pkg/googleauth"
	"savium/pkg/logger"
	"savium/pkg/postgres"

	"go.uber.org/zap"
)

// @title Savium API
// @version 1.0
// @description Personal savings-goal and finance tracking API

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting savium service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply database schema", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		appLogger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)
	googleClient := googleauth.NewClient(&cfg.Google)

	authService := service.NewAuthService(userRepo, jwtManager, googleClient, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, txRepo, appLogger)
	txService := service.NewTransactionService(txRepo, appLogger)
	dashboardService := service.NewDashboardService(goalRepo, txRepo, appLogger)

	app := api.SetupRouter(api.RouterDeps{
		AuthHandler:        handlers.NewAuthHandler(authService, cfg.Upload.Dir, cfg.Server.PublicURL, appLogger),
		UserHandler:        handlers.NewUserHandler(userService, appLogger),
		GoalHandler:        handlers.NewGoalHandler(goalService, appLogger),
		TransactionHandler: handlers.NewTransactionHandler(txService, appLogger),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService, appLogger),
		JWTManager:         jwtManager,
		Users:              userRepo,
		UploadDir:          cfg.Upload.Dir,
		ReadTimeout:        cfg.Server.ReadTimeout,
		WriteTimeout:       cfg.Server.WriteTimeout,
		Logger:             appLogger,
	})

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
}
