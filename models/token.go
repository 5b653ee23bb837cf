package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin JWT with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] so that it can be used directly as the claims
// destination when parsing.
type Token struct {
	// Token is the underlying JWT. Only the compact string form is meaningful
	// outside the server process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation
	// (header.payload.signature) sent in the Authorization header.
	SignedString string `json:"-"`

	// Principal is the parsed "sub" claim: the admin principal the token was
	// issued to.
	Principal string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
