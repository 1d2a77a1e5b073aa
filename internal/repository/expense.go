package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/akarev/expensekeeper/internal/models"
)

// ExpenseFilter narrows a list query. Zero-valued fields impose no constraint.
type ExpenseFilter struct {
	// Category matches the category column exactly when non-empty.
	Category string
	// Date matches the date column exactly when set.
	Date *time.Time
}

// PostgresExpenseRepository implements expense persistence against a PostgreSQL database.
type PostgresExpenseRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresExpenseRepository creates a new PostgresExpenseRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresExpenseRepository(db *sql.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{DB: db}
}

// CreateExpense persists the given expense record verbatim.
func (r *PostgresExpenseRepository) CreateExpense(ctx context.Context, e models.Expense) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO expenses (id, amount, category, date, description)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.Amount, e.Category, e.Date, e.Description)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// ListExpenses fetches all expenses matching the filter. Filter conditions
// are conjunctive. Returns an empty slice when nothing matches.
func (r *PostgresExpenseRepository) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	query := `SELECT id, amount, category, date, description FROM expenses`
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListExpenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Date, &e.Description); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes the expense with the given ID.
// Returns ErrExpenseNotFound if no row was deleted.
func (r *PostgresExpenseRepository) DeleteExpense(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// SumAmountBetween returns the sum of amounts of all expenses whose date
// lies in [start, end], both bounds inclusive. An empty range yields 0.
func (r *PostgresExpenseRepository) SumAmountBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date BETWEEN $1 AND $2
	`, start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("SumAmountBetween: %w", err)
	}
	return total, nil
}
