package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akarev/expensekeeper/internal/models"
	"github.com/akarev/expensekeeper/internal/repository"
)

type mockExpenseRepo struct {
	CreateExpenseFunc    func(ctx context.Context, e models.Expense) error
	ListExpensesFunc     func(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, error)
	DeleteExpenseFunc    func(ctx context.Context, id string) error
	SumAmountBetweenFunc func(ctx context.Context, start, end time.Time) (float64, error)
}

func (m *mockExpenseRepo) CreateExpense(ctx context.Context, e models.Expense) error {
	return m.CreateExpenseFunc(ctx, e)
}
func (m *mockExpenseRepo) ListExpenses(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, error) {
	return m.ListExpensesFunc(ctx, filter)
}
func (m *mockExpenseRepo) DeleteExpense(ctx context.Context, id string) error {
	return m.DeleteExpenseFunc(ctx, id)
}
func (m *mockExpenseRepo) SumAmountBetween(ctx context.Context, start, end time.Time) (float64, error) {
	return m.SumAmountBetweenFunc(ctx, start, end)
}

func floatPtr(f float64) *float64 { return &f }

func TestCreate_Success(t *testing.T) {
	var saved models.Expense
	repo := &mockExpenseRepo{
		CreateExpenseFunc: func(ctx context.Context, e models.Expense) error {
			saved = e
			return nil
		},
	}
	svc := NewExpenseService(repo)

	got, err := svc.Create(context.Background(), CreateExpenseInput{
		Amount:      floatPtr(50),
		Category:    "food",
		Date:        "2024-01-05",
		Description: "groceries",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.ID == "" {
		t.Error("expected a generated expense ID")
	}
	if got.ID != saved.ID {
		t.Errorf("returned ID %q differs from persisted ID %q", got.ID, saved.ID)
	}
	if saved.Amount != 50 || saved.Category != "food" || saved.Description != "groceries" {
		t.Errorf("persisted record = %+v; want fields passed through verbatim", saved)
	}
	wantDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !saved.Date.Equal(wantDate) {
		t.Errorf("persisted date = %v; want %v", saved.Date, wantDate)
	}
}

// Negative amounts are accepted by the current contract.
func TestCreate_NegativeAmount(t *testing.T) {
	repo := &mockExpenseRepo{
		CreateExpenseFunc: func(ctx context.Context, e models.Expense) error { return nil },
	}
	svc := NewExpenseService(repo)

	got, err := svc.Create(context.Background(), CreateExpenseInput{
		Amount:   floatPtr(-25.5),
		Category: "refund",
		Date:     "2024-02-01",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.Amount != -25.5 {
		t.Errorf("amount = %v; want -25.5", got.Amount)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewExpenseService(&mockExpenseRepo{})

	tests := []struct {
		name  string
		input CreateExpenseInput
	}{
		{"missing amount", CreateExpenseInput{Category: "food", Date: "2024-01-05"}},
		{"empty category", CreateExpenseInput{Amount: floatPtr(1), Date: "2024-01-05"}},
		{"missing date", CreateExpenseInput{Amount: floatPtr(1), Category: "food"}},
		{"malformed date", CreateExpenseInput{Amount: floatPtr(1), Category: "food", Date: "not-a-date"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Create error = %v; want ErrValidation", err)
			}
		})
	}
}

func TestList_FilterMapping(t *testing.T) {
	var gotFilter repository.ExpenseFilter
	repo := &mockExpenseRepo{
		ListExpensesFunc: func(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, error) {
			gotFilter = filter
			return []models.Expense{}, nil
		},
	}
	svc := NewExpenseService(repo)

	_, err := svc.List(context.Background(), ListFilter{Category: "food", Date: "2024-01-05"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotFilter.Category != "food" {
		t.Errorf("filter category = %q; want %q", gotFilter.Category, "food")
	}
	if gotFilter.Date == nil || !gotFilter.Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("filter date = %v; want 2024-01-05", gotFilter.Date)
	}
}

func TestList_NoFilter(t *testing.T) {
	repo := &mockExpenseRepo{
		ListExpensesFunc: func(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, error) {
			if filter.Category != "" || filter.Date != nil {
				t.Errorf("expected empty filter, got %+v", filter)
			}
			return []models.Expense{}, nil
		},
	}
	svc := NewExpenseService(repo)

	got, err := svc.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List = %v; want empty non-nil slice", got)
	}
}

func TestList_BadDateFilter(t *testing.T) {
	svc := NewExpenseService(&mockExpenseRepo{})

	_, err := svc.List(context.Background(), ListFilter{Date: "01/05/2024"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("List error = %v; want ErrValidation", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockExpenseRepo{
		DeleteExpenseFunc: func(ctx context.Context, id string) error {
			return repository.ErrExpenseNotFound
		},
	}
	svc := NewExpenseService(repo)

	err := svc.Delete(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete error = %v; want ErrNotFound", err)
	}
}

func TestDelete_Success(t *testing.T) {
	called := false
	repo := &mockExpenseRepo{
		DeleteExpenseFunc: func(ctx context.Context, id string) error {
			called = true
			if id != "id-1" {
				t.Errorf("DeleteExpense received id = %q; want %q", id, "id-1")
			}
			return nil
		},
	}
	svc := NewExpenseService(repo)

	if err := svc.Delete(context.Background(), "id-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !called {
		t.Fatal("expected DeleteExpense to be called on repo")
	}
}

func TestTotal_Success(t *testing.T) {
	repo := &mockExpenseRepo{
		SumAmountBetweenFunc: func(ctx context.Context, start, end time.Time) (float64, error) {
			wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			wantEnd := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
			if !start.Equal(wantStart) || !end.Equal(wantEnd) {
				t.Errorf("bounds = [%v, %v]; want [%v, %v]", start, end, wantStart, wantEnd)
			}
			return 50, nil
		},
	}
	svc := NewExpenseService(repo)

	total, err := svc.Total(context.Background(), "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Total returned error: %v", err)
	}
	if total != 50 {
		t.Errorf("Total = %v; want 50", total)
	}
}

func TestTotal_EmptyRange(t *testing.T) {
	repo := &mockExpenseRepo{
		SumAmountBetweenFunc: func(ctx context.Context, start, end time.Time) (float64, error) {
			return 0, nil
		},
	}
	svc := NewExpenseService(repo)

	total, err := svc.Total(context.Background(), "2030-01-01", "2030-01-31")
	if err != nil {
		t.Fatalf("Total returned error: %v", err)
	}
	if total != 0 {
		t.Errorf("Total = %v; want 0 for a range with no expenses", total)
	}
}

func TestTotal_BadBounds(t *testing.T) {
	svc := NewExpenseService(&mockExpenseRepo{})

	for _, tt := range []struct {
		name       string
		start, end string
	}{
		{"bad start", "garbage", "2024-01-31"},
		{"bad end", "2024-01-01", "garbage"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Total(context.Background(), tt.start, tt.end)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Total error = %v; want ErrValidation", err)
			}
		})
	}
}

func TestParseDate_RFC3339Fallback(t *testing.T) {
	got, err := parseDate("2024-01-05T15:04:05Z")
	if err != nil {
		t.Fatalf("parseDate returned error: %v", err)
	}
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate = %v; want %v (day precision)", got, want)
	}
}
