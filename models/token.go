package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used to authorise MCP clients against the HTTP
// transports.
//
// It embeds [jwt.Token] for low-level operations (signing, parsing) and
// [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Client is the MCP client name taken from the "sub" claim.
	Client string `json:"-"`
}

// GetClient returns the client name from the token's "sub" claim.
func (t *Token) GetClient() (string, error) {
	client, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client from token: %w", err)
	}
	if client == "" {
		return "", fmt.Errorf("error extracting client from token: empty subject")
	}

	return client, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
