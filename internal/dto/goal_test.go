package dto

import (
	"testing"
	"time"
)

func validCreateGoalRequest() CreateGoalRequest {
	return CreateGoalRequest{
		Name:         "New laptop",
		Category:     "electronics",
		TargetAmount: 1500,
		TargetDate:   time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
	}
}

func TestCreateGoalRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateGoalRequest()
		if errs := req.Validate(); errs.Any() {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("collects every failing field", func(t *testing.T) {
		req := CreateGoalRequest{
			Name:         "ab",
			Category:     "yachts",
			TargetAmount: 0,
			TargetDate:   "not-a-date",
		}
		errs := req.Validate()
		for _, field := range []string{"name", "category", "targetAmount", "targetDate"} {
			if errs[field] == "" {
				t.Errorf("missing error for %q: %v", field, errs)
			}
		}
	})

	t.Run("target date too soon", func(t *testing.T) {
		req := validCreateGoalRequest()
		req.TargetDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		errs := req.Validate()
		if errs["targetDate"] == "" {
			t.Errorf("expected a lead-time error, got %v", errs)
		}
	})

	t.Run("negative saved amount", func(t *testing.T) {
		req := validCreateGoalRequest()
		saved := -5.0
		req.SavedAmount = &saved
		errs := req.Validate()
		if errs["savedAmount"] == "" {
			t.Errorf("expected a savedAmount error, got %v", errs)
		}
	})

	t.Run("bad image url", func(t *testing.T) {
		req := validCreateGoalRequest()
		req.ImageURL = "not a url"
		errs := req.Validate()
		if errs["imageUrl"] == "" {
			t.Errorf("expected an imageUrl error, got %v", errs)
		}
	})
}

func TestUpdateGoalRequestValidate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdateGoalRequest{}
		if errs := req.Validate(); errs.Any() {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("bad category", func(t *testing.T) {
		category := "yachts"
		req := UpdateGoalRequest{Category: &category}
		errs := req.Validate()
		if errs["category"] == "" {
			t.Errorf("expected a category error, got %v", errs)
		}
	})
}

func TestAddSavingsRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{"positive", 50, false},
		{"zero", 0, true},
		{"negative", -10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := AddSavingsRequest{Amount: tt.amount}
			if got := req.Validate().Any(); got != tt.wantErr {
				t.Errorf("Any() = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestGoalListQueryValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q := GoalListQuery{Category: "travel", Status: "active", Sort: "targetDate"}
		if errs := q.Validate(); errs.Any() {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("bad sort field", func(t *testing.T) {
		q := GoalListQuery{Sort: "created"}
		errs := q.Validate()
		if errs["sort"] == "" {
			t.Errorf("expected a sort error, got %v", errs)
		}
	})
}
