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

type TransactionService struct {
	transactions TransactionStore
	logger       *zap.Logger
}

func NewTransactionService(transactions TransactionStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		logger:       logger,
	}
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, query *dto.TransactionListQuery) ([]dto.TransactionResponse, error) {
	transactions, err := s.transactions.List(ctx, userID, models.TransactionFilter{
		Type:     query.Type,
		Category: query.Category,
		Sort:     query.Sort,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewTransactionListResponse(transactions), nil
}

func (s *TransactionService) Get(ctx context.Context, userID, txID uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.getOwned(ctx, txID, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

// Create records an income or expense transaction. Saving transactions can
// only be created through the goal savings operation.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	date, ok := validation.Date(req.Date)
	if !ok {
		return nil, apperr.InvalidInput(map[string]string{"date": "Date must be a valid date."})
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Category:  req.Category,
		Type:      models.TransactionType(req.Type),
		Amount:    req.Amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) Update(ctx context.Context, userID, txID uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.getOwned(ctx, txID, userID)
	if err != nil {
		return nil, err
	}

	if tx.Type == models.TransactionTypeSaving {
		return nil, apperr.InvalidState("Saving transactions cannot be edited directly.")
	}

	if req.Title != nil {
		tx.Title = *req.Title
	}
	if req.Type != nil {
		tx.Type = models.TransactionType(*req.Type)
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		date, ok := validation.Date(*req.Date)
		if !ok {
			return nil, apperr.InvalidInput(map[string]string{"date": "Date must be a valid date."})
		}
		tx.Date = date
	}

	// The category must still belong to the set of the (possibly unchanged)
	// type after partial updates.
	if set := models.CategoriesForType(tx.Type); set != nil && !validation.OneOf(tx.Category, set) {
		return nil, apperr.InvalidInput(map[string]string{
			"category": "Category does not match the transaction type.",
		})
	}

	tx.UpdatedAt = time.Now()

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, txID uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.getOwned(ctx, txID, userID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.transactions.Delete(ctx, txID, userID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperr.NotFound("Transaction not found.")
	}

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

// FinanceSummary sums income and expense transactions. Saving transactions
// are excluded from both sides: that money is already reflected in goal
// progress and would otherwise be double-counted.
func (s *TransactionService) FinanceSummary(ctx context.Context, userID uuid.UUID) (*dto.FinanceResponse, error) {
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

	return &dto.FinanceResponse{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetIncome:     totalIncome - totalExpenses,
		Transactions:  dto.NewTransactionListResponse(transactions),
	}, nil
}

func (s *TransactionService) getOwned(ctx context.Context, txID, userID uuid.UUID) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, txID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Transaction not found.")
		}
		return nil, err
	}
	return tx, nil
}
