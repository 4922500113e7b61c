// Package auth mints and verifies the bearer tokens that protect the admin
// endpoints, and wraps password hashing for the login flow.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	gymapi "github.com/ethiofit/gym-api"
)

// DefaultTokenValidity is how long a minted token is accepted. Tokens are
// never revoked; they simply age out.
const DefaultTokenValidity = 12 * time.Hour

type claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"accountId"`
}

// Tokens issues and verifies HS256-signed tokens bound to an account id.
// Verification is stateless: it never consults the account store.
type Tokens struct {
	secret   []byte
	validity time.Duration
}

func NewTokens(secret string, validity time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &Tokens{secret: []byte(secret), validity: validity}, nil
}

// Issue signs a token for accountID, valid for the configured window from now.
func (t *Tokens) Issue(accountID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.validity)),
		},
		AccountID: accountID,
	})
	return token.SignedString(t.secret)
}

// Verify validates the signature and expiry and returns the account id the
// token was issued for. Any failure collapses into gymapi.ErrInvalidToken so
// callers cannot tell a forged token from an expired one.
func (t *Tokens) Verify(tokenString string) (string, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || parsed.AccountID == "" {
		return "", gymapi.ErrInvalidToken
	}
	return parsed.AccountID, nil
}
