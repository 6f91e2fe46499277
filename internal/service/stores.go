package service

import (
	"context"

	"savium/internal/models"
	"savium/pkg/googleauth"

	"github.com/google/uuid"
)

// Store interfaces narrow the repository surface each service needs, so the
// domain logic can be exercised against in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type GoalStore interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Goal, error)
	List(ctx context.Context, userID uuid.UUID, filter models.GoalFilter) ([]*models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
	DeleteByGoal(ctx context.Context, goalID, userID uuid.UUID) (int64, error)
}

// GoogleExchanger trades an OAuth authorization code for a Google profile.
type GoogleExchanger interface {
	Exchange(ctx context.Context, code string) (*googleauth.Profile, error)
}
