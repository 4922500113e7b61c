package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ethiofit/gym-api/auth"
)

// TokenHeader is the custom request header carrying the raw bearer token.
// The admin dashboard sends the token string as-is, without an
// Authorization scheme prefix.
const TokenHeader = "x-auth-token"

type accountKey struct{}

var (
	errNoToken  = errors.New("No token, authorization denied")
	errBadToken = errors.New("Token is not valid")
)

// Authenticate gates a route behind a valid bearer token. The resolved
// account id is placed on the request context for downstream handlers.
// Rejections use the same generic body whether the token is missing,
// malformed, or expired.
func Authenticate(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(TokenHeader))
			if raw == "" {
				respondErr(r.Context(), rw, http.StatusUnauthorized, errNoToken)
				return
			}

			accountID, err := tokens.Verify(raw)
			if err != nil {
				respondErr(r.Context(), rw, http.StatusUnauthorized, errBadToken)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey{}, accountID)
			next.ServeHTTP(rw, r.WithContext(ctx))
		})
	}
}

// AccountID returns the authenticated account id attached by Authenticate.
func AccountID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountKey{}).(string)
	return id, ok
}
