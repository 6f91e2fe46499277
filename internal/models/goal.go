package models

import (
	"time"

	"github.com/google/uuid"
)

type GoalCategory string

const (
	GoalCategoryElectronics GoalCategory = "electronics"
	GoalCategoryTravel      GoalCategory = "travel"
	GoalCategoryEducation   GoalCategory = "education"
	GoalCategoryFashion     GoalCategory = "fashion"
	GoalCategoryEvent       GoalCategory = "event"
	GoalCategoryVehicle     GoalCategory = "vehicle"
	GoalCategoryOther       GoalCategory = "other"
)

var AvailableGoalCategories = []string{
	string(GoalCategoryElectronics),
	string(GoalCategoryTravel),
	string(GoalCategoryEducation),
	string(GoalCategoryFashion),
	string(GoalCategoryEvent),
	string(GoalCategoryVehicle),
	string(GoalCategoryOther),
}

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

var AvailableGoalStatuses = []string{
	string(GoalStatusActive),
	string(GoalStatusCompleted),
}

// AvailableGoalSortFields are the whitelisted sort keys for goal listings.
var AvailableGoalSortFields = []string{"name", "amount", "targetDate"}

// GoalFilter narrows a goal listing. Zero values mean "no constraint";
// Sort must come from AvailableGoalSortFields.
type GoalFilter struct {
	Search   string
	Category string
	Status   string
	Sort     string
}

type Goal struct {
	ID           uuid.UUID    `db:"id"`
	UserID       uuid.UUID    `db:"user_id"`
	Name         string       `db:"name"`
	Category     GoalCategory `db:"category"`
	TargetAmount float64      `db:"target_amount"`
	SavedAmount  float64      `db:"saved_amount"`
	TargetDate   time.Time    `db:"target_date"`
	Status       GoalStatus   `db:"status"`
	ImageURL     string       `db:"image_url"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// Progress is the saved fraction of the target as a percentage. It is always
// derived from the current amounts, never stored.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.SavedAmount / g.TargetAmount * 100
}

// Remaining is the gap between target and saved amounts.
func (g *Goal) Remaining() float64 {
	return g.TargetAmount - g.SavedAmount
}
