package store

import (
	"context"
	"fmt"

	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/models"
)

// expenseRepository is the PostgreSQL-backed implementation of
// [ExpenseRepository]. Every query it runs carries the owner predicate, so
// one user's records are invisible to every other user at the SQL level.
type expenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExpense persists a new expense record in a single INSERT and returns
// the fully populated [models.Expense] with server-assigned fields. The
// owner column is bound from expense.UserID; there is no code path that
// inserts an expense without an owner.
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	row := r.db.QueryRowContext(ctx, createExpense,
		expense.UserID,
		expense.Amount,
		expense.Description,
		expense.Category,
		expense.Date,
	)

	var created models.Expense
	err := row.Scan(
		&created.ExpenseID,
		&created.UserID,
		&created.Amount,
		&created.Description,
		&created.Category,
		&created.Date,
	)
	if err != nil {
		r.db.logDBError(ctx, err, "*expenseRepository.CreateExpense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListExpensesByUser returns every expense owned by userID ordered by date
// descending (ties broken by newest id first).
func (r *expenseRepository) ListExpensesByUser(ctx context.Context, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExpensesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.ListExpensesByUser").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logDBError(ctx, err, "*expenseRepository.ListExpensesByUser")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, 16)

	for rows.Next() {
		var item models.Expense

		scanErr := rows.Scan(
			&item.ExpenseID,
			&item.UserID,
			&item.Amount,
			&item.Description,
			&item.Category,
			&item.Date,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*expenseRepository.ListExpensesByUser").
				Int64("user_id", userID).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		expenses = append(expenses, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*expenseRepository.ListExpensesByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return expenses, nil
}

// DeleteExpense removes the expense with the given id owned by userID.
// Zero affected rows — whether the id is absent or belongs to another
// user — yields [ErrExpenseNotFound]; the two cases are indistinguishable
// to the caller.
func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpenseQuery(expenseID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.DeleteExpense").
			Int64("user_id", userID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logDBError(ctx, err, "*expenseRepository.DeleteExpense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.db.logDBError(ctx, err, "*expenseRepository.DeleteExpense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Debug().
			Int64("expense_id", expenseID).
			Int64("user_id", userID).
			Msg("expense not found for owner")
		return ErrExpenseNotFound
	}

	return nil
}
