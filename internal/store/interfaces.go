package store

import (
	"context"

	"github.com/ledgerly/go-expense-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by its (lower-cased) email.
	// A missing account yields ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ExpenseRepository is the persistence contract for expense records.
// Every operation carries the owner identity; no query ever runs without
// the owner filter.
type ExpenseRepository interface {
	// CreateExpense persists a new expense bound to expense.UserID and
	// returns it with server-assigned fields populated. The insert is
	// atomic: either the fully-owned record exists or nothing does.
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)

	// ListExpensesByUser returns all expenses owned by userID ordered by
	// date descending.
	ListExpensesByUser(ctx context.Context, userID int64) ([]models.Expense, error)

	// DeleteExpense removes the expense with the given id if and only if
	// it is owned by userID. A missing or foreign-owned expense yields
	// ErrExpenseNotFound.
	DeleteExpense(ctx context.Context, expenseID, userID int64) error
}
