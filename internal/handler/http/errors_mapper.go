package http

import (
	"errors"
	"net/http"

	"github.com/ledgerly/go-expense-tracker/internal/service"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/utils"
	"github.com/ledgerly/go-expense-tracker/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrAccountLocked:           http.StatusLocked,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrExpenseNotFound:    http.StatusNotFound,

	ErrInvalidExpenseID: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing wording for errors whose sentinel
// text is not suitable for responses as-is.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials: "Invalid credentials",
	service.ErrAccountLocked:      "Account locked out",
	store.ErrEmailAlreadyExists:   "User already exists",
	store.ErrExpenseNotFound:      "Expense not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the JSON error body.
// Validation failures carry one message per invalid field; server-side
// failures never leak their cause to the client.
func writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		utils.WriteJSON(w, models.ErrorResponse{
			Message: "Validation failed",
			Errors:  verr.Messages(),
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)

	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		message = err.Error()
	}
	for target, m := range errorMessageMap {
		if errors.Is(err, target) {
			message = m
			break
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
