package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/internal/utils"
	"github.com/ledgerly/go-expense-tracker/models"
)

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var input models.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// ownership comes from the verified token, never from the body
	expense, err := h.services.ExpenseService.Create(ctx, userID, input)
	if err != nil {
		log.Err(err).Msg("expense creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, expense, http.StatusCreated)
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	expenses, err := h.services.ExpenseService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("expense listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	expenseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || expenseID <= 0 {
		log.Err(ErrInvalidExpenseID).Str("id", chi.URLParam(r, "id")).Send()
		writeError(w, ErrInvalidExpenseID)
		return
	}

	if err = h.services.ExpenseService.Delete(ctx, userID, expenseID); err != nil {
		log.Err(err).Int64("expense_id", expenseID).Msg("expense deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
