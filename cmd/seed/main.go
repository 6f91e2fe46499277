// Seeds a demo account with sample goals and transactions for local
// development. Running it twice is a no-op for the user and adds no
// duplicate data.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"savium/internal/models"
	"savium/internal/repository"
	"savium/pkg/auth"
	"savium/pkg/config"
	"savium/pkg/logger"
	"savium/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@savium.dev"
	demoPassword = "demo1234"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply database schema", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	if _, err := userRepo.GetByEmail(ctx, demoEmail); err == nil {
		appLogger.Info("Demo user already seeded, nothing to do")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		appLogger.Fatal("Failed to check demo user", zap.Error(err))
	}

	appLogger.Info("Seeding demo data")

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		FullName:  "Demo User",
		Email:     demoEmail,
		Password:  hashed,
		Role:      models.RoleUser,
		LoginType: models.LoginTypeEmail,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	goals := []*models.Goal{
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			Name:         "New laptop",
			Category:     models.GoalCategoryElectronics,
			TargetAmount: 1500,
			SavedAmount:  400,
			TargetDate:   now.AddDate(0, 6, 0),
			Status:       models.GoalStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			Name:         "Trip to Lisbon",
			Category:     models.GoalCategoryTravel,
			TargetAmount: 2000,
			SavedAmount:  0,
			TargetDate:   now.AddDate(1, 0, 0),
			Status:       models.GoalStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, goal := range goals {
		if err := goalRepo.Create(ctx, goal); err != nil {
			appLogger.Fatal("Failed to create demo goal", zap.Error(err))
		}
	}

	transactions := []*models.Transaction{
		{
			ID:        uuid.New(),
			UserID:    user.ID,
			Title:     "Monthly salary",
			Category:  "salary",
			Type:      models.TransactionTypeIncome,
			Amount:    3200,
			Date:      now.AddDate(0, 0, -14),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			UserID:    user.ID,
			Title:     "Rent",
			Category:  "rent",
			Type:      models.TransactionTypeExpense,
			Amount:    950,
			Date:      now.AddDate(0, 0, -10),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			UserID:    user.ID,
			GoalID:    &goals[0].ID,
			Title:     "Goal: New laptop",
			Category:  string(models.GoalCategoryElectronics),
			Type:      models.TransactionTypeSaving,
			Amount:    400,
			Date:      now.AddDate(0, 0, -7),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, tx := range transactions {
		if err := txRepo.Create(ctx, tx); err != nil {
			appLogger.Fatal("Failed to create demo transaction", zap.Error(err))
		}
	}

	appLogger.Info("Demo data seeded",
		zap.String("email", demoEmail),
		zap.Int("goals", len(goals)),
		zap.Int("transactions", len(transactions)),
	)
}
