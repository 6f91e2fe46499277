package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestUserService() (*UserService, *memUserStore) {
	users := newMemUserStore()
	return NewUserService(users, zap.NewNop()), users
}

func seedUser(t *testing.T, users *memUserStore, email string) *models.User {
	t.Helper()
	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		FullName:  "Seeded User",
		Email:     email,
		Password:  "$2a$10$hash",
		Role:      models.RoleUser,
		LoginType: models.LoginTypeEmail,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserServiceUpdate(t *testing.T) {
	svc, users := newTestUserService()
	user := seedUser(t, users, "alice@example.com")

	name := "Alice B. Smith"
	email := "Alice.New@Example.com"
	resp, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: &name,
		Email:    &email,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if resp.FullName != name {
		t.Errorf("fullName = %q", resp.FullName)
	}
	if resp.Email != "alice.new@example.com" {
		t.Errorf("email = %q, want normalized", resp.Email)
	}
}

func TestUserServiceUpdateEmailTaken(t *testing.T) {
	svc, users := newTestUserService()
	alice := seedUser(t, users, "alice@example.com")
	seedUser(t, users, "bob@example.com")

	email := "bob@example.com"
	_, err := svc.Update(context.Background(), alice.ID, &dto.UpdateUserRequest{Email: &email})
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want bad request", err)
	}
	if appErr.Message != "Email is already in use by another account." {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestUserServiceUpdateOwnEmailUnchanged(t *testing.T) {
	svc, users := newTestUserService()
	alice := seedUser(t, users, "alice@example.com")

	email := "alice@example.com"
	if _, err := svc.Update(context.Background(), alice.ID, &dto.UpdateUserRequest{Email: &email}); err != nil {
		t.Fatalf("Update with own email: %v", err)
	}
}

func TestUserServiceDelete(t *testing.T) {
	svc, users := newTestUserService()
	user := seedUser(t, users, "alice@example.com")

	resp, err := svc.Delete(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if resp.ID != user.ID.String() {
		t.Errorf("deleted id = %q", resp.ID)
	}

	_, err = svc.Get(context.Background(), user.ID)
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want not found after delete", err)
	}
}

func TestUserServiceDeleteKeepsGoalsAndTransactions(t *testing.T) {
	users := newMemUserStore()
	goals := newMemGoalStore()
	transactions := newMemTransactionStore()
	svc := NewUserService(users, zap.NewNop())
	ctx := context.Background()

	user := seedUser(t, users, "alice@example.com")
	goal := seedGoal(t, goals, user.ID, 1000, 100, models.GoalStatusActive)
	tx := seedTransaction(t, transactions, user.ID, models.TransactionTypeIncome, "salary", 500)

	if _, err := svc.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Account removal does not cascade: the user's records stay put.
	if _, err := goals.GetByID(ctx, goal.ID, user.ID); err != nil {
		t.Errorf("goal removed by user delete: %v", err)
	}
	if _, err := transactions.GetByID(ctx, tx.ID, user.ID); err != nil {
		t.Errorf("transaction removed by user delete: %v", err)
	}
}

func TestUserServiceGetNotFound(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Get(context.Background(), uuid.New())
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
	if appErr.Message != "User not found." {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestUserServiceList(t *testing.T) {
	svc, users := newTestUserService()
	seedUser(t, users, "alice@example.com")
	seedUser(t, users, "bob@example.com")

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("users = %d, want 2", len(list))
	}
}
