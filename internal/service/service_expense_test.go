package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerly/go-expense-tracker/internal/mock"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/validators"
	"github.com/ledgerly/go-expense-tracker/models"
)

func newTestExpenseService(t *testing.T) (ExpenseService, *mock.MockExpenseRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockExpenseRepository(ctrl)

	return NewExpenseService(repo, validators.NewInputValidator()), repo
}

func TestExpenseService_Create(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	ctx := context.Background()
	date := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().
		CreateExpense(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Expense) (models.Expense, error) {
			assert.Equal(t, int64(42), e.UserID)
			assert.Equal(t, 10.56, e.Amount) // 10.555 rounded to cents
			assert.Equal(t, "lunch", e.Description)
			assert.Equal(t, "food", e.Category)
			assert.True(t, e.Date.Equal(date))

			e.ExpenseID = 7
			return e, nil
		})

	expense, err := svc.Create(ctx, 42, models.ExpenseInput{
		Amount:      10.555,
		Description: "lunch",
		Category:    "food",
		Date:        date,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), expense.ExpenseID)
}

func TestExpenseService_Create_DefaultsDate(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	ctx := context.Background()

	repo.EXPECT().
		CreateExpense(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Expense) (models.Expense, error) {
			assert.WithinDuration(t, time.Now().UTC(), e.Date, time.Minute)
			return e, nil
		})

	_, err := svc.Create(ctx, 42, models.ExpenseInput{Amount: 5, Description: "coffee", Category: "food"})
	assert.NoError(t, err)
}

func TestExpenseService_Create_InvalidInput(t *testing.T) {
	svc, _ := newTestExpenseService(t)

	_, err := svc.Create(context.Background(), 42, models.ExpenseInput{Amount: 1})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		validators.ErrDescriptionIsRequired.Error(),
		validators.ErrCategoryIsRequired.Error(),
	}, verr.Messages())
}

func TestExpenseService_Create_NegativeAmount(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	ctx := context.Background()

	repo.EXPECT().
		CreateExpense(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Expense) (models.Expense, error) {
			assert.Equal(t, -12.50, e.Amount)
			return e, nil
		})

	expense, err := svc.Create(ctx, 7, models.ExpenseInput{
		Amount:      -12.50,
		Description: "refund",
		Category:    "Food",
	})
	require.NoError(t, err)
	assert.Equal(t, -12.50, expense.Amount)
}

func TestExpenseService_List(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	ctx := context.Background()

	want := []models.Expense{{ExpenseID: 2}, {ExpenseID: 1}}
	repo.EXPECT().ListExpensesByUser(ctx, int64(42)).Return(want, nil)

	got, err := svc.List(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExpenseService_List_StorageError(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	ctx := context.Background()

	repo.EXPECT().ListExpensesByUser(ctx, int64(42)).Return(nil, errors.New("connection reset"))

	_, err := svc.List(ctx, 42)
	assert.Error(t, err)
}

func TestExpenseService_Delete(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteExpense(ctx, int64(7), int64(42)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 42, 7))
}

func TestExpenseService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteExpense(ctx, int64(7), int64(42)).Return(store.ErrExpenseNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 42, 7), store.ErrExpenseNotFound)
}
