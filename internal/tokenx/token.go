// Package tokenx inspects login tokens issued by the story API.
//
// The client never holds the signing key, so claims are read without
// signature verification. The result is only used to sanity-check stored
// credentials before they are sent back to the server, which remains the
// authority on validity.
package tokenx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrNoUsername     = errors.New("token has no username claim")
)

// Claims is the payload the API puts into its login tokens.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Parse decodes the claims of token without verifying its signature.
func Parse(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}

// Username returns the username claim of token.
func Username(token string) (string, error) {
	claims, err := Parse(token)
	if err != nil {
		return "", err
	}
	if claims.Username == "" {
		return "", ErrNoUsername
	}
	return claims.Username, nil
}
