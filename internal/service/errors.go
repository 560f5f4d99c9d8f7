package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountLocked is returned on login when the account is temporarily
	// locked out after repeated failed attempts.
	ErrAccountLocked = errors.New("account locked out")

	// ErrSigningConfigIncomplete is returned when token signing settings
	// are missing or partial, so no token can be issued.
	ErrSigningConfigIncomplete = errors.New("token signing configuration is incomplete")

	// ErrTokenIsExpiredOrInvalid is returned when a presented token fails
	// signature, issuer, audience or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ValidationError carries every input violation found in a single request,
// one reason per invalid field.
type ValidationError struct {
	Reasons []error
}

// Error joins the reasons into a single semicolon-separated message.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		msgs = append(msgs, r.Error())
	}

	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual reasons to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Reasons
}

// Messages returns the reasons as plain strings, in validation order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		msgs = append(msgs, r.Error())
	}

	return msgs
}

// newValidationError flattens err (possibly a joined error) into a
// ValidationError with one reason per violation.
func newValidationError(err error) *ValidationError {
	return &ValidationError{Reasons: flatten(err)}
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}

		return out
	}

	return []error{err}
}
