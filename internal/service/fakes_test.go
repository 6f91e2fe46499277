package service

import (
	"context"
	"strings"

	"savium/internal/models"
	"savium/internal/repository"
	"savium/pkg/googleauth"

	"github.com/google/uuid"
)

// In-memory stores backing the service tests. They mirror the repository
// contract: lookups are scoped by owner and misses return
// repository.ErrNotFound.

type memUserStore struct {
	users map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

type memGoalStore struct {
	goals map[uuid.UUID]*models.Goal
}

func newMemGoalStore() *memGoalStore {
	return &memGoalStore{goals: make(map[uuid.UUID]*models.Goal)}
}

func (s *memGoalStore) Create(_ context.Context, goal *models.Goal) error {
	cp := *goal
	s.goals[goal.ID] = &cp
	return nil
}

func (s *memGoalStore) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Goal, error) {
	g, ok := s.goals[id]
	if !ok || g.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *memGoalStore) List(_ context.Context, userID uuid.UUID, filter models.GoalFilter) ([]*models.Goal, error) {
	out := make([]*models.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		if g.UserID != userID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Category != "" && string(g.Category) != filter.Category {
			continue
		}
		if filter.Status != "" && string(g.Status) != filter.Status {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memGoalStore) Update(_ context.Context, goal *models.Goal) error {
	if _, ok := s.goals[goal.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *goal
	s.goals[goal.ID] = &cp
	return nil
}

func (s *memGoalStore) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	g, ok := s.goals[id]
	if !ok || g.UserID != userID {
		return false, nil
	}
	delete(s.goals, id)
	return true, nil
}

type memTransactionStore struct {
	transactions map[uuid.UUID]*models.Transaction
}

func newMemTransactionStore() *memTransactionStore {
	return &memTransactionStore{transactions: make(map[uuid.UUID]*models.Transaction)}
}

func (s *memTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	cp := *tx
	s.transactions[tx.ID] = &cp
	return nil
}

func (s *memTransactionStore) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok || tx.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (s *memTransactionStore) List(_ context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]*models.Transaction, error) {
	out := make([]*models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if tx.UserID != userID {
			continue
		}
		if filter.Type != "" && string(tx.Type) != filter.Type {
			continue
		}
		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memTransactionStore) Update(_ context.Context, tx *models.Transaction) error {
	if _, ok := s.transactions[tx.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *tx
	s.transactions[tx.ID] = &cp
	return nil
}

func (s *memTransactionStore) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	tx, ok := s.transactions[id]
	if !ok || tx.UserID != userID {
		return false, nil
	}
	delete(s.transactions, id)
	return true, nil
}

func (s *memTransactionStore) DeleteByGoal(_ context.Context, goalID, userID uuid.UUID) (int64, error) {
	var removed int64
	for id, tx := range s.transactions {
		if tx.UserID == userID && tx.GoalID != nil && *tx.GoalID == goalID {
			delete(s.transactions, id)
			removed++
		}
	}
	return removed, nil
}

type fakeExchanger struct {
	profile *googleauth.Profile
	err     error
}

func (f *fakeExchanger) Exchange(_ context.Context, _ string) (*googleauth.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}
