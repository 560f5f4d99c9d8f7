package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerly/go-expense-tracker/internal/config"
	"github.com/ledgerly/go-expense-tracker/internal/credentials"
	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/utils"
	"github.com/ledgerly/go-expense-tracker/internal/validators"
	"github.com/ledgerly/go-expense-tracker/models"
)

type authService struct {
	users     store.UserRepository
	hasher    credentials.Hasher
	lockout   credentials.LockoutTracker
	validator validators.Validator
	cfg       config.Auth
}

// NewAuthService wires the account and token logic together.
func NewAuthService(
	users store.UserRepository,
	hasher credentials.Hasher,
	lockout credentials.LockoutTracker,
	validator validators.Validator,
	cfg config.Auth,
) AuthService {
	return &authService{
		users:     users,
		hasher:    hasher,
		lockout:   lockout,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := s.validator.Validate(ctx, creds); err != nil {
		if errors.Is(err, validators.ErrUnsupportedInputType) {
			return models.User{}, err
		}

		return models.User{}, newValidationError(err)
	}

	creds.Email = normalizeEmail(creds.Email)

	hash, err := s.hasher.HashPassword(creds.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, models.User{Email: creds.Email, PasswordHash: hash})
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", user.UserID).
		Msg("user registered")

	return user, nil
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	email := normalizeEmail(creds.Email)

	// Presence only: unlike registration, login never judges email syntax
	// or password strength, and blank input is rejected before any config
	// check or store access.
	if err := loginInputPresent(email, creds.Password); err != nil {
		return models.Token{}, err
	}

	if err := s.signingConfigComplete(); err != nil {
		return models.Token{}, err
	}

	log := logger.FromContext(ctx)

	if s.lockout.IsLockedOut(email) {
		log.Warn().Msg("login attempt on locked account")
		return models.Token{}, ErrAccountLocked
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrInvalidCredentials
		}

		return models.Token{}, err
	}

	if !s.hasher.VerifyPassword(user.PasswordHash, creds.Password) {
		if s.lockout.RecordFailure(email) {
			log.Warn().Msg("account locked out after repeated failures")
			return models.Token{}, ErrAccountLocked
		}

		return models.Token{}, ErrInvalidCredentials
	}

	s.lockout.Reset(email)

	tokenDuration := time.Duration(s.cfg.TokenExpireDays) * 24 * time.Hour
	token, err := utils.GenerateJWTToken(
		s.cfg.TokenIssuer, s.cfg.TokenAudience,
		user.Email, user.UserID,
		tokenDuration, s.cfg.TokenSignKey,
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("signing token: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")

	return token, nil
}

func (s *authService) ParseToken(_ context.Context, signedToken string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(
		signedToken,
		s.cfg.TokenSignKey, s.cfg.TokenIssuer, s.cfg.TokenAudience,
	)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// signingConfigComplete reports ErrSigningConfigIncomplete unless every
// setting needed to sign a token is present.
func (s *authService) signingConfigComplete() error {
	if s.cfg.TokenSignKey == "" ||
		s.cfg.TokenIssuer == "" ||
		s.cfg.TokenAudience == "" ||
		s.cfg.TokenExpireDays <= 0 {
		return ErrSigningConfigIncomplete
	}

	return nil
}

func loginInputPresent(email, password string) error {
	var missing []error
	if email == "" {
		missing = append(missing, validators.ErrEmailIsRequired)
	}
	if password == "" {
		missing = append(missing, validators.ErrPasswordIsRequired)
	}
	if len(missing) > 0 {
		return newValidationError(errors.Join(missing...))
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
