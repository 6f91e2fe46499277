package service

import (
	"context"

	"savium/internal/dto"
	"savium/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardService struct {
	goals        GoalStore
	transactions TransactionStore
	logger       *zap.Logger
}

func NewDashboardService(goals GoalStore, transactions TransactionStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		goals:        goals,
		transactions: transactions,
		logger:       logger,
	}
}

// Get composes the dashboard rollup: active-goal totals from goal state and
// net income from transaction state. Saving transactions do not affect net
// income; they only move money into goal progress.
func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	activeGoals, err := s.goals.List(ctx, userID, models.GoalFilter{
		Status: string(models.GoalStatusActive),
	})
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.List(ctx, userID, models.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	var totalIncome, totalExpenses float64
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			totalIncome += tx.Amount
		case models.TransactionTypeExpense:
			totalExpenses += tx.Amount
		}
	}

	var totalSaved, totalTarget float64
	for _, goal := range activeGoals {
		totalSaved += goal.SavedAmount
		totalTarget += goal.TargetAmount
	}

	overallProgress := 0.0
	if totalTarget > 0 {
		overallProgress = totalSaved / totalTarget * 100
	}

	return &dto.DashboardResponse{
		ActiveGoals:     len(activeGoals),
		NetIncome:       totalIncome - totalExpenses,
		TotalSaved:      totalSaved,
		OverallProgress: overallProgress,
	}, nil
}
