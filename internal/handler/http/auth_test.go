package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/internal/service"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/validators"
	"github.com/ledgerly/go-expense-tracker/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn   func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn      func(ctx context.Context, creds models.Credentials) (models.Token, error)
	parseTokenFn func(ctx context.Context, signedToken string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) ParseToken(ctx context.Context, signedToken string) (models.Token, error) {
	return m.parseTokenFn(ctx, signedToken)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// credsBody serialises credentials to a JSON request body string.
func credsBody(t *testing.T, c models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a signed-looking token valid for seven days.
func stubToken(signed string, userID int64) models.Token {
	now := time.Now()
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		},
		UserID:       userID,
		SignedString: signed,
	}
}

// decodeErrorBody unmarshals the error response payload.
func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// validCreds is a convenience fixture used across multiple tests.
var validCreds = models.Credentials{
	Email:    "alice@example.com",
	Password: "super-secret",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created and a body carrying the new account's id.
func TestRegister_Success(t *testing.T) {
	created := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	auth := &mockAuthService{
		registerFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{UserID: 1, Email: c.Email, CreatedAt: created}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, int64(1), resp.UserID)
	assert.True(t, resp.CreatedAt.Equal(created))
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRegister_ValidationFailure verifies that invalid input results in
// 400 Bad Request with one message per violated field.
func TestRegister_ValidationFailure(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, &service.ValidationError{Reasons: []error{
				validators.ErrEmailFormatIsInvalid,
				validators.ErrPasswordIsTooShort,
			}}
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorBody(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, []string{
		validators.ErrEmailFormatIsInvalid.Error(),
		validators.ErrPasswordIsTooShort.Error(),
	}, resp.Errors)
}

// TestRegister_EmailTaken verifies that a duplicate email results in
// 409 Conflict.
func TestRegister_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already exists", decodeErrorBody(t, rec).Message)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials result in 200 OK with the
// signed token and its remaining lifetime in seconds.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return stubToken(signedToken, 42), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, int64(7*24*60*60), resp.ExpiresInSeconds)
}

// TestLogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_ValidationFailure verifies that blank credentials result in
// 400 Bad Request with one message per missing field.
func TestLogin_ValidationFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, &service.ValidationError{Reasons: []error{
				validators.ErrEmailIsRequired,
				validators.ErrPasswordIsRequired,
			}}
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, models.Credentials{})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorBody(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, []string{
		validators.ErrEmailIsRequired.Error(),
		validators.ErrPasswordIsRequired.Error(),
	}, resp.Errors)
}

// TestLogin_InvalidCredentials verifies that an unknown email or a wrong
// password results in 401 Unauthorized with an identical message for both.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeErrorBody(t, rec).Message)
}

// TestLogin_AccountLocked verifies that a locked account results in
// 423 Locked.
func TestLogin_AccountLocked(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrAccountLocked
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusLocked, rec.Code)
	assert.Equal(t, "Account locked out", decodeErrorBody(t, rec).Message)
}

// TestLogin_SigningConfigIncomplete verifies that a server unable to sign
// tokens responds with 500 and does not expose the cause.
func TestLogin_SigningConfigIncomplete(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrSigningConfigIncomplete
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeErrorBody(t, rec).Message)
}

// TestLogin_UnexpectedError verifies that arbitrary service failures map to
// 500 Internal Server Error.
func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, errors.New("connection reset")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
