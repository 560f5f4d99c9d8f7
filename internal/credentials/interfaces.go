// Package credentials provides the credential-hardening primitives used by
// the authentication service: one-way password hashing with constant-time
// verification, and failed-attempt tracking with temporary account lockout.
//
// Both concerns are expressed as small capability interfaces so the service
// layer stays decoupled from the concrete hashing algorithm and lockout
// storage.
package credentials

//go:generate mockgen -source=interfaces.go -destination=../mock/credentials_mock.go -package=mock

// Hasher is the one-way password hashing capability.
type Hasher interface {
	// HashPassword derives a storable hash from a plaintext password.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches the stored hash.
	// The comparison is constant-time with respect to the hash contents.
	VerifyPassword(hash, password string) bool
}

// LockoutTracker records failed sign-in attempts per account key and
// reports whether an account is currently locked out.
//
// Implementations must be safe for concurrent use.
type LockoutTracker interface {
	// RecordFailure registers one failed attempt for key and reports
	// whether the account is locked out as a result.
	RecordFailure(key string) bool

	// IsLockedOut reports whether key is currently locked out.
	IsLockedOut(key string) bool

	// Reset clears the failure history for key, typically after a
	// successful sign-in.
	Reset(key string)
}
