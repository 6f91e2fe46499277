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

func newTestGoalService() (*GoalService, *memGoalStore, *memTransactionStore) {
	goals := newMemGoalStore()
	transactions := newMemTransactionStore()
	return NewGoalService(goals, transactions, zap.NewNop()), goals, transactions
}

func seedGoal(t *testing.T, goals *memGoalStore, userID uuid.UUID, target, saved float64, status models.GoalStatus) *models.Goal {
	t.Helper()
	now := time.Now()
	goal := &models.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "New laptop",
		Category:     models.GoalCategoryElectronics,
		TargetAmount: target,
		SavedAmount:  saved,
		TargetDate:   now.AddDate(0, 3, 0),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := goals.Create(context.Background(), goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	return goal
}

func TestGoalServiceAddSavingsCapsAtTarget(t *testing.T) {
	svc, goals, transactions := newTestGoalService()
	userID := uuid.New()
	goal := seedGoal(t, goals, userID, 1000, 800, models.GoalStatusActive)

	resp, err := svc.AddSavings(context.Background(), userID, goal.ID, &dto.AddSavingsRequest{Amount: 500})
	if err != nil {
		t.Fatalf("AddSavings: %v", err)
	}

	if resp.SavedAmount != 1000 {
		t.Errorf("saved amount = %v, want 1000", resp.SavedAmount)
	}
	if resp.Status != string(models.GoalStatusCompleted) {
		t.Errorf("status = %q, want %q", resp.Status, models.GoalStatusCompleted)
	}
	if resp.Progress != 100 {
		t.Errorf("progress = %v, want 100", resp.Progress)
	}

	txs, _ := transactions.List(context.Background(), userID, models.TransactionFilter{})
	if len(txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs))
	}
	tx := txs[0]
	if tx.Amount != 200 {
		t.Errorf("saving amount = %v, want capped 200", tx.Amount)
	}
	if tx.Type != models.TransactionTypeSaving {
		t.Errorf("type = %q, want saving", tx.Type)
	}
	if tx.GoalID == nil || *tx.GoalID != goal.ID {
		t.Errorf("saving transaction not linked to goal")
	}
	if tx.Title != "Goal: New laptop" {
		t.Errorf("title = %q", tx.Title)
	}
	if tx.Category != string(models.GoalCategoryElectronics) {
		t.Errorf("category = %q, want goal category", tx.Category)
	}
}

func TestGoalServiceAddSavingsPartial(t *testing.T) {
	svc, goals, _ := newTestGoalService()
	userID := uuid.New()
	goal := seedGoal(t, goals, userID, 1000, 100, models.GoalStatusActive)

	resp, err := svc.AddSavings(context.Background(), userID, goal.ID, &dto.AddSavingsRequest{Amount: 300})
	if err != nil {
		t.Fatalf("AddSavings: %v", err)
	}

	if resp.SavedAmount != 400 {
		t.Errorf("saved amount = %v, want 400", resp.SavedAmount)
	}
	if resp.Status != string(models.GoalStatusActive) {
		t.Errorf("status = %q, want active", resp.Status)
	}
	if resp.Progress != 40 {
		t.Errorf("progress = %v, want 40", resp.Progress)
	}
}

func TestGoalServiceAddSavingsCompletedGoal(t *testing.T) {
	svc, goals, transactions := newTestGoalService()
	userID := uuid.New()
	goal := seedGoal(t, goals, userID, 500, 500, models.GoalStatusCompleted)

	_, err := svc.AddSavings(context.Background(), userID, goal.ID, &dto.AddSavingsRequest{Amount: 50})
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want bad request", err)
	}
	if appErr.Message != "Goal is already completed." {
		t.Errorf("message = %q", appErr.Message)
	}

	// A rejected contribution must not leave a saving transaction behind.
	txs, _ := transactions.List(context.Background(), userID, models.TransactionFilter{})
	if len(txs) != 0 {
		t.Errorf("transactions = %d, want 0", len(txs))
	}
}

func TestGoalServiceAddSavingsOtherUsersGoal(t *testing.T) {
	svc, goals, _ := newTestGoalService()
	owner := uuid.New()
	goal := seedGoal(t, goals, owner, 1000, 0, models.GoalStatusActive)

	_, err := svc.AddSavings(context.Background(), uuid.New(), goal.ID, &dto.AddSavingsRequest{Amount: 50})
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want not found for foreign goal", err)
	}
}

func TestGoalServiceCreateMarksOverfundedCompleted(t *testing.T) {
	svc, _, _ := newTestGoalService()
	userID := uuid.New()

	saved := 2500.0
	resp, err := svc.Create(context.Background(), userID, &dto.CreateGoalRequest{
		Name:         "Road bike",
		Category:     string(models.GoalCategoryOther),
		TargetAmount: 2000,
		SavedAmount:  &saved,
		TargetDate:   time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resp.SavedAmount != 2000 {
		t.Errorf("saved amount = %v, want clamped 2000", resp.SavedAmount)
	}
	if resp.Status != string(models.GoalStatusCompleted) {
		t.Errorf("status = %q, want completed", resp.Status)
	}
}

func TestGoalServiceUpdateRecomputesProgress(t *testing.T) {
	svc, goals, _ := newTestGoalService()
	userID := uuid.New()
	goal := seedGoal(t, goals, userID, 2000, 500, models.GoalStatusActive)

	got, err := svc.Get(context.Background(), userID, goal.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Progress != 25 {
		t.Errorf("progress = %v, want 25", got.Progress)
	}

	target := 1000.0
	resp, err := svc.Update(context.Background(), userID, goal.ID, &dto.UpdateGoalRequest{TargetAmount: &target})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Progress != 50 {
		t.Errorf("progress after target change = %v, want 50", resp.Progress)
	}
}

func TestGoalServiceUpdateCompletesWhenTargetLowered(t *testing.T) {
	svc, goals, _ := newTestGoalService()
	userID := uuid.New()
	goal := seedGoal(t, goals, userID, 2000, 500, models.GoalStatusActive)

	target := 500.0
	resp, err := svc.Update(context.Background(), userID, goal.ID, &dto.UpdateGoalRequest{TargetAmount: &target})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Status != string(models.GoalStatusCompleted) {
		t.Errorf("status = %q, want completed once saved reaches target", resp.Status)
	}
}

func TestGoalServiceDeleteCascadesTransactions(t *testing.T) {
	svc, goals, transactions := newTestGoalService()
	userID := uuid.New()
	goal := seedGoal(t, goals, userID, 1000, 0, models.GoalStatusActive)

	for i := 0; i < 2; i++ {
		if _, err := svc.AddSavings(context.Background(), userID, goal.ID, &dto.AddSavingsRequest{Amount: 100}); err != nil {
			t.Fatalf("AddSavings: %v", err)
		}
	}
	// An unrelated transaction must survive the cascade.
	other := &models.Transaction{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "Monthly salary",
		Category: "salary",
		Type:     models.TransactionTypeIncome,
		Amount:   3000,
		Date:     time.Now(),
	}
	if err := transactions.Create(context.Background(), other); err != nil {
		t.Fatalf("seed transaction: %v", err)
	}

	if _, err := svc.Delete(context.Background(), userID, goal.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), userID, goal.ID); err == nil {
		t.Errorf("deleted goal still retrievable")
	}

	txs, _ := transactions.List(context.Background(), userID, models.TransactionFilter{})
	if len(txs) != 1 {
		t.Fatalf("transactions after cascade = %d, want 1", len(txs))
	}
	if txs[0].ID != other.ID {
		t.Errorf("surviving transaction = %v, want the unrelated one", txs[0].ID)
	}
}

func TestGoalServiceGetNotFound(t *testing.T) {
	svc, _, _ := newTestGoalService()

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
	if appErr.Message != "Goal not found." {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestGoalServiceListScopedToUser(t *testing.T) {
	svc, goals, _ := newTestGoalService()
	alice := uuid.New()
	bob := uuid.New()
	seedGoal(t, goals, alice, 1000, 0, models.GoalStatusActive)
	seedGoal(t, goals, bob, 1000, 0, models.GoalStatusActive)

	list, err := svc.List(context.Background(), alice, &dto.GoalListQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("goals = %d, want only the caller's", len(list))
	}
}
