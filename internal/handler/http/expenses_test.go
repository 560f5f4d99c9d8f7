package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/internal/service"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/utils"
	"github.com/ledgerly/go-expense-tracker/internal/validators"
	"github.com/ledgerly/go-expense-tracker/models"
)

// ─────────────────────────────────────────────
// Mock ExpenseService
// ─────────────────────────────────────────────

// mockExpenseService implements service.ExpenseService for unit tests.
// Each method field can be overridden per test case.
type mockExpenseService struct {
	createFn func(ctx context.Context, userID int64, input models.ExpenseInput) (models.Expense, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Expense, error)
	deleteFn func(ctx context.Context, userID int64, expenseID int64) error
}

func (m *mockExpenseService) Create(ctx context.Context, userID int64, input models.ExpenseInput) (models.Expense, error) {
	return m.createFn(ctx, userID, input)
}

func (m *mockExpenseService) List(ctx context.Context, userID int64) ([]models.Expense, error) {
	return m.listFn(ctx, userID)
}

func (m *mockExpenseService) Delete(ctx context.Context, userID int64, expenseID int64) error {
	return m.deleteFn(ctx, userID, expenseID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithExpenses builds a Handler with the given ExpenseService mock.
func newHandlerWithExpenses(t *testing.T, expenses service.ExpenseService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ExpenseService: expenses,
	}
	return NewHandler(svcs, logger.Nop())
}

// asUser attaches the authenticated user's id to the request context, the way
// the auth middleware does after verifying a token.
func asUser(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route context carrying the given path parameter.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// createExpense
// ─────────────────────────────────────────────

// TestCreateExpense_Success verifies that a valid request results in
// 201 Created with the stored expense, owner taken from the token identity.
func TestCreateExpense_Success(t *testing.T) {
	date := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	expenses := &mockExpenseService{
		createFn: func(_ context.Context, userID int64, input models.ExpenseInput) (models.Expense, error) {
			assert.Equal(t, int64(42), userID)
			return models.Expense{
				ExpenseID:   7,
				UserID:      userID,
				Amount:      input.Amount,
				Description: input.Description,
				Category:    input.Category,
				Date:        date,
			}, nil
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	body := `{"amount": 12.5, "description": "lunch", "category": "food"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.createExpense(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ExpenseID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, 12.5, resp.Amount)
}

// TestCreateExpense_NegativeAmount verifies that a negative amount is stored
// as-is and results in 201 Created, the same as any other amount.
func TestCreateExpense_NegativeAmount(t *testing.T) {
	expenses := &mockExpenseService{
		createFn: func(_ context.Context, userID int64, input models.ExpenseInput) (models.Expense, error) {
			assert.Equal(t, -12.5, input.Amount)
			return models.Expense{ExpenseID: 8, UserID: userID, Amount: input.Amount}, nil
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	body := `{"amount": -12.5, "description": "refund", "category": "food"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.createExpense(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, -12.5, resp.Amount)
}

// TestCreateExpense_NoIdentity verifies that a request lacking the identity
// set by the auth middleware results in 401 Unauthorized.
func TestCreateExpense_NoIdentity(t *testing.T) {
	h := newHandlerWithExpenses(t, &mockExpenseService{})

	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.createExpense(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestCreateExpense_InvalidJSON verifies that a malformed body results in
// 400 Bad Request.
func TestCreateExpense_InvalidJSON(t *testing.T) {
	h := newHandlerWithExpenses(t, &mockExpenseService{})

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader("{broken")), 42)
	rec := httptest.NewRecorder()

	h.createExpense(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestCreateExpense_ValidationFailure verifies that invalid input results in
// 400 Bad Request with per-field messages.
func TestCreateExpense_ValidationFailure(t *testing.T) {
	expenses := &mockExpenseService{
		createFn: func(_ context.Context, _ int64, _ models.ExpenseInput) (models.Expense, error) {
			return models.Expense{}, &service.ValidationError{Reasons: []error{
				validators.ErrDescriptionIsRequired,
				validators.ErrCategoryIsRequired,
			}}
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(`{}`)), 42)
	rec := httptest.NewRecorder()

	h.createExpense(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorBody(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Len(t, resp.Errors, 2)
}

// ─────────────────────────────────────────────
// listExpenses
// ─────────────────────────────────────────────

// TestListExpenses_Success verifies that the user's expenses are returned
// as a JSON array.
func TestListExpenses_Success(t *testing.T) {
	expenses := &mockExpenseService{
		listFn: func(_ context.Context, userID int64) ([]models.Expense, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Expense{{ExpenseID: 2, UserID: 42}, {ExpenseID: 1, UserID: 42}}, nil
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/expenses", nil), 42)
	rec := httptest.NewRecorder()

	h.listExpenses(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ExpenseID)
}

// TestListExpenses_Empty verifies that a user with no expenses gets an empty
// JSON array, not null.
func TestListExpenses_Empty(t *testing.T) {
	expenses := &mockExpenseService{
		listFn: func(_ context.Context, _ int64) ([]models.Expense, error) {
			return []models.Expense{}, nil
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/expenses", nil), 42)
	rec := httptest.NewRecorder()

	h.listExpenses(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// TestListExpenses_ServiceError verifies that storage failures map to
// 500 Internal Server Error.
func TestListExpenses_ServiceError(t *testing.T) {
	expenses := &mockExpenseService{
		listFn: func(_ context.Context, _ int64) ([]models.Expense, error) {
			return nil, errors.New("connection reset")
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/expenses", nil), 42)
	rec := httptest.NewRecorder()

	h.listExpenses(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// deleteExpense
// ─────────────────────────────────────────────

// TestDeleteExpense_Success verifies that deleting an owned expense results
// in 204 No Content with an empty body.
func TestDeleteExpense_Success(t *testing.T) {
	expenses := &mockExpenseService{
		deleteFn: func(_ context.Context, userID, expenseID int64) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(7), expenseID)
			return nil
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	req := asUser(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/expenses/7", nil), "id", "7"), 42)
	rec := httptest.NewRecorder()

	h.deleteExpense(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// TestDeleteExpense_InvalidID verifies that a non-numeric id results in
// 400 Bad Request.
func TestDeleteExpense_InvalidID(t *testing.T) {
	h := newHandlerWithExpenses(t, &mockExpenseService{})

	req := asUser(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/expenses/abc", nil), "id", "abc"), 42)
	rec := httptest.NewRecorder()

	h.deleteExpense(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestDeleteExpense_NotFound verifies that deleting a missing expense — or
// one that belongs to a different user — results in 404 Not Found.
func TestDeleteExpense_NotFound(t *testing.T) {
	expenses := &mockExpenseService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrExpenseNotFound
		},
	}

	h := newHandlerWithExpenses(t, expenses)
	req := asUser(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/expenses/7", nil), "id", "7"), 42)
	rec := httptest.NewRecorder()

	h.deleteExpense(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Expense not found", decodeErrorBody(t, rec).Message)
}
