package models

import "time"

// RegisterResponse is the payload returned after successful registration.
type RegisterResponse struct {
	// Message is a short human-readable confirmation.
	Message string `json:"message"`

	// UserID is the server-assigned identifier of the new account.
	UserID int64 `json:"userId"`

	// CreatedAt is the account creation timestamp (UTC).
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse is the payload returned after successful authentication.
type LoginResponse struct {
	// Token is the signed bearer token to be attached to subsequent
	// requests in the Authorization header.
	Token string `json:"token"`

	// ExpiresInSeconds is the remaining lifetime of the token in seconds.
	ExpiresInSeconds int64 `json:"expiresInSeconds"`
}

// ErrorResponse is the uniform error payload returned by the API.
type ErrorResponse struct {
	// Message is a stable, non-enumerable description of the failure.
	Message string `json:"message"`

	// Errors optionally lists field-specific validation messages.
	Errors []string `json:"errors,omitempty"`
}

// Credentials carries the email/password pair accepted by the
// registration and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
