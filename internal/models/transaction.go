package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeSaving  TransactionType = "saving"
)

// AvailableTransactionTypes excludes "saving": saving transactions are only
// created by the goal savings operation, never directly by clients.
var AvailableTransactionTypes = []string{
	string(TransactionTypeIncome),
	string(TransactionTypeExpense),
}

var AvailableIncomeCategories = []string{
	"salary", "business", "freelance", "gift", "other",
}

var AvailableExpenseCategories = []string{
	"food", "rent", "shopping", "transport", "entertainment", "health", "utilities", "other",
}

// AvailableTransactionSortFields are the whitelisted sort keys for listings.
var AvailableTransactionSortFields = []string{"date", "amount"}

// TransactionFilter narrows a transaction listing. Zero values mean "no
// constraint"; Sort must come from AvailableTransactionSortFields.
type TransactionFilter struct {
	Type     string
	Category string
	Sort     string
}

// CategoriesForType returns the category set a transaction of the given type
// must draw from, or nil when the type carries no fixed set.
func CategoriesForType(t TransactionType) []string {
	switch t {
	case TransactionTypeIncome:
		return AvailableIncomeCategories
	case TransactionTypeExpense:
		return AvailableExpenseCategories
	default:
		return nil
	}
}

type Transaction struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	GoalID    *uuid.UUID      `db:"goal_id"`
	Title     string          `db:"title"`
	Category  string          `db:"category"`
	Type      TransactionType `db:"type"`
	Amount    float64         `db:"amount"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
