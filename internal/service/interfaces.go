//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Package service implements the application's business logic on top of the
// storage layer: account registration, login with lockout protection, token
// issuance and verification, and owner-scoped expense management.
//
// Services translate storage and credential errors into the sentinel errors
// of this package, so transport handlers can map them to responses without
// knowing anything about the layers underneath.
package service

import (
	"context"

	"github.com/ledgerly/go-expense-tracker/models"
)

// AuthService manages user accounts and bearer tokens.
type AuthService interface {

	// Register creates a new account from the given credentials.
	// The email is normalized (trimmed and lowercased) before storing.
	// Returns *ValidationError on invalid input and
	// store.ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login verifies the credentials and issues a signed token.
	// Returns ErrAccountLocked while the account is locked out,
	// ErrInvalidCredentials on unknown email or wrong password, and
	// ErrSigningConfigIncomplete when tokens cannot be signed.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// ParseToken verifies a signed token string and returns its claims.
	// Returns ErrTokenIsExpiredOrInvalid on any verification failure.
	ParseToken(ctx context.Context, signedToken string) (models.Token, error)
}

// ExpenseService manages expenses on behalf of a single authenticated user.
// The owner always comes from the verified token, never from request bodies.
type ExpenseService interface {

	// Create records a new expense for userID. A zero input date defaults
	// to the current time. Amounts are rounded to two decimal places.
	// Returns *ValidationError on invalid input.
	Create(ctx context.Context, userID int64, input models.ExpenseInput) (models.Expense, error)

	// List returns the user's expenses, newest first. Users with no
	// expenses get an empty list, not an error.
	List(ctx context.Context, userID int64) ([]models.Expense, error)

	// Delete removes the user's expense with the given id.
	// Returns store.ErrExpenseNotFound when no such expense belongs to
	// the user, including when it belongs to someone else.
	Delete(ctx context.Context, userID int64, expenseID int64) error
}
