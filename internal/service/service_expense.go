package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/validators"
	"github.com/ledgerly/go-expense-tracker/models"
)

type expenseService struct {
	expenses  store.ExpenseRepository
	validator validators.Validator
	now       func() time.Time
}

// NewExpenseService wires the owner-scoped expense logic together.
func NewExpenseService(expenses store.ExpenseRepository, validator validators.Validator) ExpenseService {
	return &expenseService{
		expenses:  expenses,
		validator: validator,
		now:       time.Now,
	}
}

func (s *expenseService) Create(ctx context.Context, userID int64, input models.ExpenseInput) (models.Expense, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		if errors.Is(err, validators.ErrUnsupportedInputType) {
			return models.Expense{}, err
		}

		return models.Expense{}, newValidationError(err)
	}

	date := input.Date
	if date.IsZero() {
		date = s.now().UTC()
	}

	expense, err := s.expenses.CreateExpense(ctx, models.Expense{
		UserID:      userID,
		Amount:      roundToCents(input.Amount),
		Description: input.Description,
		Category:    input.Category,
		Date:        date,
	})
	if err != nil {
		return models.Expense{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", userID).
		Int64("expense_id", expense.ExpenseID).
		Msg("expense created")

	return expense, nil
}

func (s *expenseService) List(ctx context.Context, userID int64) ([]models.Expense, error) {
	return s.expenses.ListExpensesByUser(ctx, userID)
}

func (s *expenseService) Delete(ctx context.Context, userID int64, expenseID int64) error {
	if err := s.expenses.DeleteExpense(ctx, expenseID, userID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", userID).
		Int64("expense_id", expenseID).
		Msg("expense deleted")

	return nil
}

// roundToCents rounds a monetary amount to two decimal places, half away
// from zero.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
