package service

import (
	"github.com/ledgerly/go-expense-tracker/internal/config"
	"github.com/ledgerly/go-expense-tracker/internal/credentials"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/validators"
)

// Services aggregates every business service of the application.
type Services struct {
	AuthService
	ExpenseService
}

// NewServices constructs the full service set on top of the given storages.
func NewServices(
	storages *store.Storages,
	hasher credentials.Hasher,
	lockout credentials.LockoutTracker,
	cfg config.Auth,
) *Services {
	validator := validators.NewInputValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, lockout, validator, cfg),
		ExpenseService: NewExpenseService(storages.ExpenseRepository, validator),
	}
}
