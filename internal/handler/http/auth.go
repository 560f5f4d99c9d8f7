package http

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/internal/utils"
	"github.com/ledgerly/go-expense-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message:   "User registered successfully",
		UserID:    user.UserID,
		CreatedAt: user.CreatedAt,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("user_id", token.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:            token.SignedString,
		ExpiresInSeconds: int64(token.ExpiresAt.Time.Sub(token.IssuedAt.Time).Seconds()),
	}, http.StatusOK)
}
