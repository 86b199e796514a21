package middleware

import (
	"context"
	"net/http"

	jwtinfra "github.com/go-notes-api/internal/infrastructure/jwt"
)

// TokenHeader is the custom request header the client sends the session
// token in. Not a Bearer scheme — the header value is the bare token.
const TokenHeader = "X-Auth-Token"

type contextKey string

const ClaimsKey contextKey = "claims"

// Auth returns middleware that validates the session token from the
// X-Auth-Token header and injects its claims into the request context.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(TokenHeader)
			if tokenStr == "" {
				writeJSONError(w, http.StatusUnauthorized, "no token, authorization denied")
				return
			}
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "token is not valid")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts session token claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}
