package store

import "github.com/ledgerly/go-expense-tracker/internal/logger"

// Storages aggregates the repository implementations handed to the service
// layer.
type Storages struct {
	UserRepository    UserRepository
	ExpenseRepository ExpenseRepository
}

// NewStorages wires all repositories onto the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ExpenseRepository: NewExpenseRepository(db, logger),
	}
}
