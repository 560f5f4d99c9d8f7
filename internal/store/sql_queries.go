package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createExpense = `INSERT INTO expenses (user_id, amount, description, category, date)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING expense_id, user_id, amount, description, category, date;`
)

// expenseColumns is the canonical column list scanned into models.Expense.
var expenseColumns = []string{
	"expense_id",
	"user_id",
	"amount",
	"description",
	"category",
	"date",
}

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListExpensesQuery builds the owner-scoped listing query:
// all expenses of userID, newest date first.
func buildListExpensesQuery(userID int64) (string, []any, error) {
	return psql.
		Select(expenseColumns...).
		From("expenses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "expense_id DESC").
		ToSql()
}

// buildDeleteExpenseQuery builds the owner-scoped delete. Both predicates
// are mandatory: an expense owned by someone else never matches.
func buildDeleteExpenseQuery(expenseID, userID int64) (string, []any, error) {
	return psql.
		Delete("expenses").
		Where(sq.Eq{"expense_id": expenseID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
