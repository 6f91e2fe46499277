package dto

import (
	"fmt"
	"strings"
	"time"

	"savium/internal/models"
	"savium/internal/validation"
)

type CreateTransactionRequest struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

func (r *CreateTransactionRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if !validation.Required(r.Title) {
		errs.Add("title", "Title is required.")
	} else if !validation.MinLen(r.Title, 3) {
		errs.Add("title", "Title must be at least 3 characters.")
	}
	if !validation.OneOf(r.Type, models.AvailableTransactionTypes) {
		errs.Add("type", fmt.Sprintf("Type must be one of: %s.", strings.Join(models.AvailableTransactionTypes, ", ")))
	}
	if !validation.Required(r.Category) {
		errs.Add("category", "Category is required.")
	} else {
		checkCategoryForType(errs, r.Type, r.Category)
	}
	if r.Amount <= 0 {
		errs.Add("amount", "Amount must be greater than 0.")
	}
	if !validation.Required(r.Date) {
		errs.Add("date", "Date is required.")
	} else if t, ok := validation.Date(r.Date); !ok {
		errs.Add("date", "Date must be a valid date.")
	} else if !validation.NotInFuture(t) {
		errs.Add("date", "Date must be in the past or present.")
	}

	return errs
}

type UpdateTransactionRequest struct {
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	Type     *string  `json:"type"`
	Amount   *float64 `json:"amount"`
	Date     *string  `json:"date"`
}

func (r *UpdateTransactionRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if r.Title != nil && !validation.MinLen(*r.Title, 3) {
		errs.Add("title", "Title must be at least 3 characters.")
	}
	if r.Type != nil && !validation.OneOf(*r.Type, models.AvailableTransactionTypes) {
		errs.Add("type", fmt.Sprintf("Type must be one of: %s.", strings.Join(models.AvailableTransactionTypes, ", ")))
	}
	if r.Category != nil && r.Type != nil {
		checkCategoryForType(errs, *r.Type, *r.Category)
	}
	if r.Amount != nil && *r.Amount <= 0 {
		errs.Add("amount", "Amount must be greater than 0.")
	}
	if r.Date != nil {
		if t, ok := validation.Date(*r.Date); !ok {
			errs.Add("date", "Date must be a valid date.")
		} else if !validation.NotInFuture(t) {
			errs.Add("date", "Date must be in the past or present.")
		}
	}

	return errs
}

type TransactionListQuery struct {
	Type     string `query:"type"`
	Category string `query:"category"`
	Sort     string `query:"sort"`
}

func (q *TransactionListQuery) Validate() validation.Errors {
	errs := validation.Errors{}

	if q.Type != "" && !validation.OneOf(q.Type, models.AvailableTransactionTypes) {
		errs.Add("type", fmt.Sprintf("Type must be one of: %s.", strings.Join(models.AvailableTransactionTypes, ", ")))
	}
	if q.Category != "" && q.Type != "" {
		checkCategoryForType(errs, q.Type, q.Category)
	}
	if q.Sort != "" && !validation.OneOf(q.Sort, models.AvailableTransactionSortFields) {
		errs.Add("sort", fmt.Sprintf("Sort field must be one of: %s.", strings.Join(models.AvailableTransactionSortFields, ", ")))
	}

	return errs
}

// checkCategoryForType enforces that the category belongs to the set matching
// the transaction type. Types without a fixed set pass through.
func checkCategoryForType(errs validation.Errors, txType, category string) {
	set := models.CategoriesForType(models.TransactionType(txType))
	if set == nil {
		return
	}
	if !validation.OneOf(category, set) {
		errs.Add("category", fmt.Sprintf("%s category must be one of: %s.",
			capitalize(txType), strings.Join(set, ", ")))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type TransactionResponse struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goalId,omitempty"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        tx.ID.String(),
		Title:     tx.Title,
		Category:  tx.Category,
		Type:      string(tx.Type),
		Amount:    tx.Amount,
		Date:      tx.Date,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
	if tx.GoalID != nil {
		resp.GoalID = tx.GoalID.String()
	}
	return resp
}

func NewTransactionListResponse(transactions []*models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}
