package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarev/expensekeeper/internal/middleware"
	"github.com/akarev/expensekeeper/internal/models"
	"github.com/akarev/expensekeeper/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ExpenseService defines the interface for expense operations
// required by the HTTP handlers.
type ExpenseService interface {
	// Create validates and persists a new expense.
	Create(ctx context.Context, in service.CreateExpenseInput) (models.Expense, error)
	// List returns all expenses matching the filter.
	List(ctx context.Context, filter service.ListFilter) ([]models.Expense, error)
	// Delete removes the expense with the given ID.
	Delete(ctx context.Context, id string) error
	// Total sums the amounts of expenses dated within the inclusive range.
	Total(ctx context.Context, start, end string) (float64, error)
}

// ExpenseHandler handles HTTP requests for expense management.
// All of its endpoints sit behind the bearer-token middleware.
type ExpenseHandler struct {
	// ExpenseService performs the underlying expense operations.
	ExpenseService ExpenseService
	// Logger records resource activity with the authenticated subject attached.
	Logger *zap.Logger
}

// CreateExpenseRequest represents the JSON payload for creating an expense.
// Amount is a pointer so a missing field is told apart from zero.
type CreateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
}

// Create handles expense creation requests.
// Responds 201 with the created record, or 400 on missing or malformed
// required fields.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	expense, err := h.ExpenseService.Create(r.Context(), service.CreateExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, "amount, category and date are required", http.StatusBadRequest)
			return
		}
		h.logError(r, "create expense failed", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.Logger.Info("expense created",
		zap.String("expense_id", expense.ID),
		zap.String("user_id", middleware.GetUserIDFromContext(r.Context())),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(expense)
}

// List handles filtered expense listing.
// Recognized query options: category (exact match) and date (exact
// calendar-date match), conjunctive when both present.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.ListFilter{
		Category: r.URL.Query().Get("category"),
		Date:     r.URL.Query().Get("date"),
	}

	expenses, err := h.ExpenseService.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, "invalid date filter", http.StatusBadRequest)
			return
		}
		h.logError(r, "list expenses failed", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(expenses)
}

// Delete handles expense deletion by ID.
// Responds 404 if the expense does not exist; deleting the same ID twice
// yields 404 the second time.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ExpenseService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}
		h.logError(r, "delete expense failed", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.Logger.Info("expense deleted",
		zap.String("expense_id", id),
		zap.String("user_id", middleware.GetUserIDFromContext(r.Context())),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "expense deleted",
	})
}

// Total handles date-range total aggregation.
// Query options start and end are inclusive calendar-date bounds. An
// inverted range yields 0; an unparseable bound yields 400.
func (h *ExpenseHandler) Total(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	total, err := h.ExpenseService.Total(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, "start and end must be valid dates", http.StatusBadRequest)
			return
		}
		h.logError(r, "total aggregation failed", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]float64{
		"total": total,
	})
}

// logError records a failed resource operation without exposing store
// detail to the client.
func (h *ExpenseHandler) logError(r *http.Request, msg string, err error) {
	h.Logger.Error(msg,
		zap.Error(err),
		zap.String("user_id", middleware.GetUserIDFromContext(r.Context())),
	)
}
