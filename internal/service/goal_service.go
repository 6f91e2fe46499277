package service

import (
	"context"
	"errors"
	"time"

	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/models"
	"savium/internal/repository"
	"savium/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GoalService struct {
	goals        GoalStore
	transactions TransactionStore
	logger       *zap.Logger
}

func NewGoalService(goals GoalStore, transactions TransactionStore, logger *zap.Logger) *GoalService {
	return &GoalService{
		goals:        goals,
		transactions: transactions,
		logger:       logger,
	}
}

func (s *GoalService) List(ctx context.Context, userID uuid.UUID, query *dto.GoalListQuery) ([]dto.GoalResponse, error) {
	goals, err := s.goals.List(ctx, userID, models.GoalFilter{
		Search:   query.Search,
		Category: query.Category,
		Status:   query.Status,
		Sort:     query.Sort,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewGoalListResponse(goals), nil
}

func (s *GoalService) Get(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error) {
	goal, err := s.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewGoalResponse(goal)
	return &resp, nil
}

func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	targetDate, ok := validation.Date(req.TargetDate)
	if !ok {
		return nil, apperr.InvalidInput(map[string]string{"targetDate": "Target date must be a valid date."})
	}

	savedAmount := 0.0
	if req.SavedAmount != nil {
		savedAmount = *req.SavedAmount
	}

	now := time.Now()
	goal := &models.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Category:     models.GoalCategory(req.Category),
		TargetAmount: req.TargetAmount,
		SavedAmount:  savedAmount,
		TargetDate:   targetDate,
		Status:       models.GoalStatusActive,
		ImageURL:     req.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	reconcileStatus(goal)

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}

	resp := dto.NewGoalResponse(goal)
	return &resp, nil
}

func (s *GoalService) Update(ctx context.Context, userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	goal, err := s.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Category != nil {
		goal.Category = models.GoalCategory(*req.Category)
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.SavedAmount != nil {
		goal.SavedAmount = *req.SavedAmount
	}
	if req.TargetDate != nil {
		targetDate, ok := validation.Date(*req.TargetDate)
		if !ok {
			return nil, apperr.InvalidInput(map[string]string{"targetDate": "Target date must be a valid date."})
		}
		goal.TargetDate = targetDate
	}
	if req.ImageURL != nil {
		goal.ImageURL = *req.ImageURL
	}

	reconcileStatus(goal)
	goal.UpdatedAt = time.Now()

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}

	resp := dto.NewGoalResponse(goal)
	return &resp, nil
}

// Delete removes a goal and cascades to every transaction referencing it.
// No orphaned saving transactions survive.
func (s *GoalService) Delete(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error) {
	goal, err := s.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	// Transactions go first: they hold the foreign key on the goal.
	removed, err := s.transactions.DeleteByGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.goals.Delete(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperr.NotFound("Goal not found.")
	}

	s.logger.Info("Goal deleted",
		zap.String("goal_id", goalID.String()),
		zap.Int64("cascaded_transactions", removed),
	)

	resp := dto.NewGoalResponse(goal)
	return &resp, nil
}

// AddSavings applies a contribution to an active goal. The applied amount is
// capped at the remaining gap; the excess of the requested amount is
// discarded. The saving transaction records the applied amount.
func (s *GoalService) AddSavings(ctx context.Context, userID, goalID uuid.UUID, req *dto.AddSavingsRequest) (*dto.GoalResponse, error) {
	goal, err := s.getOwned(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	if goal.Status == models.GoalStatusCompleted {
		return nil, apperr.InvalidState("Goal is already completed.")
	}

	applied := req.Amount
	if remaining := goal.Remaining(); applied > remaining {
		applied = remaining
	}

	goal.SavedAmount += applied
	reconcileStatus(goal)
	goal.UpdatedAt = time.Now()

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    &goal.ID,
		Title:     "Goal: " + goal.Name,
		Category:  string(goal.Category),
		Type:      models.TransactionTypeSaving,
		Amount:    applied,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Savings applied",
		zap.String("goal_id", goalID.String()),
		zap.Float64("requested", req.Amount),
		zap.Float64("applied", applied),
	)

	resp := dto.NewGoalResponse(goal)
	return &resp, nil
}

func (s *GoalService) getOwned(ctx context.Context, goalID, userID uuid.UUID) (*models.Goal, error) {
	goal, err := s.goals.GetByID(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Goal not found.")
		}
		return nil, err
	}
	return goal, nil
}

// reconcileStatus enforces savedAmount <= targetAmount and flips the goal to
// completed once the target is reached.
func reconcileStatus(goal *models.Goal) {
	if goal.SavedAmount >= goal.TargetAmount {
		goal.SavedAmount = goal.TargetAmount
		goal.Status = models.GoalStatusCompleted
	}
}
