package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarev/expensekeeper/internal/models"
	"github.com/akarev/expensekeeper/internal/repository"
	"github.com/google/uuid"
)

// dateLayout is the primary wire format for calendar dates.
const dateLayout = "2006-01-02"

// ExpenseRepository defines the persistence operations
// required by the expense service.
type ExpenseRepository interface {
	// CreateExpense persists a new expense record verbatim.
	CreateExpense(ctx context.Context, e models.Expense) error
	// ListExpenses fetches all expenses matching the filter.
	ListExpenses(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, error)
	// DeleteExpense removes the expense with the given ID.
	// Returns repository.ErrExpenseNotFound if no row was deleted.
	DeleteExpense(ctx context.Context, id string) error
	// SumAmountBetween sums amounts of expenses dated within [start, end] inclusive.
	SumAmountBetween(ctx context.Context, start, end time.Time) (float64, error)
}

// CreateExpenseInput carries the fields of an expense to be created.
// Amount is a pointer so a missing amount can be told apart from zero.
type CreateExpenseInput struct {
	Amount      *float64
	Category    string
	Date        string
	Description string
}

// ListFilter holds the recognized list query options. Empty fields impose
// no constraint; both options are conjunctive when present.
type ListFilter struct {
	Category string
	Date     string
}

// ExpenseService implements expense create, filtered list, delete,
// and date-range total aggregation.
type ExpenseService struct {
	repo ExpenseRepository
}

// NewExpenseService constructs an ExpenseService using the provided repository.
func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Create validates input, assigns a fresh identifier, and persists the record.
// Returns ErrValidation on missing or malformed required fields. Any numeric
// amount is accepted, negative values included.
func (s *ExpenseService) Create(ctx context.Context, in CreateExpenseInput) (models.Expense, error) {
	if in.Amount == nil {
		return models.Expense{}, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if in.Category == "" {
		return models.Expense{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if in.Date == "" {
		return models.Expense{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: date %q is not a valid date", ErrValidation, in.Date)
	}

	expense := models.Expense{
		ID:          uuid.NewString(),
		Amount:      *in.Amount,
		Category:    in.Category,
		Date:        date,
		Description: in.Description,
	}
	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// List returns all expenses matching the filter. The result materializes
// fully before returning; an empty result is an empty slice, not an error.
// No ordering is guaranteed.
func (s *ExpenseService) List(ctx context.Context, filter ListFilter) ([]models.Expense, error) {
	repoFilter := repository.ExpenseFilter{Category: filter.Category}
	if filter.Date != "" {
		date, err := parseDate(filter.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q is not a valid date", ErrValidation, filter.Date)
		}
		repoFilter.Date = &date
	}

	expenses, err := s.repo.ListExpenses(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Delete removes the expense with the given ID. Returns ErrNotFound if it
// does not exist; a repeated delete of the same ID yields ErrNotFound.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// Total sums the amounts of all expenses dated within [start, end], both
// bounds inclusive. An empty or inverted range yields 0. Returns
// ErrValidation if either bound is not a parseable date.
func (s *ExpenseService) Total(ctx context.Context, start, end string) (float64, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return 0, fmt.Errorf("%w: start %q is not a valid date", ErrValidation, start)
	}
	endDate, err := parseDate(end)
	if err != nil {
		return 0, fmt.Errorf("%w: end %q is not a valid date", ErrValidation, end)
	}

	total, err := s.repo.SumAmountBetween(ctx, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

// parseDate accepts a plain calendar date and falls back to RFC 3339
// timestamps, truncated to day precision.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
