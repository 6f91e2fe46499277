package dto

import (
	"fmt"
	"strings"
	"time"

	"savium/internal/models"
	"savium/internal/validation"
)

// targetDateMinDays is the minimum lead time for a goal's target date.
const targetDateMinDays = 3

type CreateGoalRequest struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	TargetAmount float64  `json:"targetAmount"`
	SavedAmount  *float64 `json:"savedAmount"`
	TargetDate   string   `json:"targetDate"`
	ImageURL     string   `json:"imageUrl"`
}

func (r *CreateGoalRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if !validation.Required(r.Name) {
		errs.Add("name", "Goal name is required.")
	} else if !validation.MinLen(r.Name, 3) {
		errs.Add("name", "Goal name must be at least 3 characters.")
	}
	if !validation.OneOf(r.Category, models.AvailableGoalCategories) {
		errs.Add("category", fmt.Sprintf("Category must be one of: %s.", strings.Join(models.AvailableGoalCategories, ", ")))
	}
	if r.TargetAmount <= 0 {
		errs.Add("targetAmount", "Target amount must be greater than 0.")
	}
	if r.SavedAmount != nil && *r.SavedAmount < 0 {
		errs.Add("savedAmount", "Saved amount must be equal or greater than 0.")
	}
	if !validation.Required(r.TargetDate) {
		errs.Add("targetDate", "Target date is required.")
	} else if t, ok := validation.Date(r.TargetDate); !ok {
		errs.Add("targetDate", "Target date must be a valid date.")
	} else if !validation.MinDaysAhead(t, targetDateMinDays) {
		errs.Add("targetDate", "Target date must be at least 3 days in the future.")
	}
	if r.ImageURL != "" && !validation.URL(r.ImageURL) {
		errs.Add("imageUrl", "Image must be a valid URL.")
	}

	return errs
}

type UpdateGoalRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	TargetAmount *float64 `json:"targetAmount"`
	SavedAmount  *float64 `json:"savedAmount"`
	TargetDate   *string  `json:"targetDate"`
	ImageURL     *string  `json:"imageUrl"`
}

func (r *UpdateGoalRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if r.Name != nil && !validation.MinLen(*r.Name, 3) {
		errs.Add("name", "Goal name must be at least 3 characters.")
	}
	if r.Category != nil && !validation.OneOf(*r.Category, models.AvailableGoalCategories) {
		errs.Add("category", fmt.Sprintf("Category must be one of: %s.", strings.Join(models.AvailableGoalCategories, ", ")))
	}
	if r.TargetAmount != nil && *r.TargetAmount <= 0 {
		errs.Add("targetAmount", "Target amount must be greater than 0.")
	}
	if r.SavedAmount != nil && *r.SavedAmount < 0 {
		errs.Add("savedAmount", "Saved amount must be equal or greater than 0.")
	}
	if r.TargetDate != nil {
		if t, ok := validation.Date(*r.TargetDate); !ok {
			errs.Add("targetDate", "Target date must be a valid date.")
		} else if !validation.MinDaysAhead(t, targetDateMinDays) {
			errs.Add("targetDate", "Target date must be at least 3 days in the future.")
		}
	}
	if r.ImageURL != nil && *r.ImageURL != "" && !validation.URL(*r.ImageURL) {
		errs.Add("imageUrl", "Image must be a valid URL.")
	}

	return errs
}

type AddSavingsRequest struct {
	Amount float64 `json:"amount"`
}

func (r *AddSavingsRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if r.Amount <= 0 {
		errs.Add("amount", "Amount must be greater than 0.")
	}

	return errs
}

type GoalListQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
	Sort     string `query:"sort"`
}

func (q *GoalListQuery) Validate() validation.Errors {
	errs := validation.Errors{}

	if q.Category != "" && !validation.OneOf(q.Category, models.AvailableGoalCategories) {
		errs.Add("category", fmt.Sprintf("Category must be one of: %s.", strings.Join(models.AvailableGoalCategories, ", ")))
	}
	if q.Status != "" && !validation.OneOf(q.Status, models.AvailableGoalStatuses) {
		errs.Add("status", fmt.Sprintf("Status must be one of: %s.", strings.Join(models.AvailableGoalStatuses, ", ")))
	}
	if q.Sort != "" && !validation.OneOf(q.Sort, models.AvailableGoalSortFields) {
		errs.Add("sort", fmt.Sprintf("Sort field must be one of: %s.", strings.Join(models.AvailableGoalSortFields, ", ")))
	}

	return errs
}

type GoalResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	TargetAmount float64   `json:"targetAmount"`
	SavedAmount  float64   `json:"savedAmount"`
	TargetDate   time.Time `json:"targetDate"`
	Status       string    `json:"status"`
	Progress     float64   `json:"progress"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewGoalResponse(goal *models.Goal) GoalResponse {
	return GoalResponse{
		ID:           goal.ID.String(),
		Name:         goal.Name,
		Category:     string(goal.Category),
		TargetAmount: goal.TargetAmount,
		SavedAmount:  goal.SavedAmount,
		TargetDate:   goal.TargetDate,
		Status:       string(goal.Status),
		Progress:     goal.Progress(),
		ImageURL:     goal.ImageURL,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}

func NewGoalListResponse(goals []*models.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, NewGoalResponse(g))
	}
	return out
}
