package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the JWT claim set used for stateless bearer authentication.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp,
// iat, iss, aud, jti) and adds the owner identity claim. The subject claim
// carries the user's email; UserID carries the numeric identity used for
// ownership scoping on every resource operation.
//
// Tokens are never persisted server-side: they expire by timestamp
// comparison only.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// as defined by RFC 7519.
	jwt.RegisteredClaims

	// UserID is the owner identifier embedded as the "uid" claim.
	UserID int64 `json:"uid"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature). Populated at
	// issuance; excluded from the claim set.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
