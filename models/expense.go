package models

import "time"

// Expense represents a single expense record owned by exactly one user.
//
// The owner is bound at creation time from the authenticated requester
// identity and is never reassigned. Every read and delete of an Expense is
// filtered by the owner, so an expense belonging to a different user is
// indistinguishable from a non-existent one.
type Expense struct {
	// ExpenseID is the unique identifier of the expense record,
	// assigned by the database at creation time.
	ExpenseID int64 `json:"id"`

	// UserID is the identifier of the owning user. It is set from the
	// verified requester identity, never from client input.
	UserID int64 `json:"userId"`

	// Amount is the expense amount with two-fraction-digit precision.
	// Negative values are accepted as-is.
	Amount float64 `json:"amount"`

	// Description is a short free-form description of the expense.
	// Non-empty, at most 200 characters.
	Description string `json:"description"`

	// Category is a free-form category label. Non-empty, at most
	// 50 characters; not a closed enumeration.
	Category string `json:"category"`

	// Date is the calendar timestamp of the expense. Defaults to the
	// creation time when not supplied.
	Date time.Time `json:"date"`
}

// ExpenseInput carries the client-supplied fields of a new expense.
// The owner is intentionally absent: it is always taken from the
// authenticated identity.
type ExpenseInput struct {
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date,omitzero"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}
