// Package adapter provides transport-layer abstractions for communicating
// with the expense-tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ledgerly/go-expense-tracker/models"
)

// ServerAdapter defines transport-agnostic communication with the
// expense-tracker server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// Returns [ErrConflict] (wrapped) when the email is already taken and
	// [ErrBadRequest] on validation failures.
	Register(ctx context.Context, creds models.Credentials) (models.RegisterResponse, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken. Returns [ErrUnauthorized] (wrapped) on bad
	// credentials and [ErrLocked] while the account is locked out.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// CreateExpense records a new expense for the authenticated user.
	CreateExpense(ctx context.Context, input models.ExpenseInput) (models.Expense, error)

	// ListExpenses returns the authenticated user's expenses, newest first.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// DeleteExpense removes the authenticated user's expense with the given
	// id. Returns [ErrNotFound] (wrapped) when the expense does not exist or
	// belongs to another user.
	DeleteExpense(ctx context.Context, expenseID int64) error
}
