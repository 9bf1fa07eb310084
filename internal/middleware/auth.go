package middleware

import (
	"net/http"
	"strings"

	"github.com/dwguild/backend/internal/model"
	"github.com/dwguild/backend/pkg/jwt"
)

// TokenValidator defines the interface for token verification
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// Auth returns the access guard: it requires a bearer token and rejects the
// request before the downstream handler runs when the token is missing or
// fails verification. With a single admin there is no identity context to
// attach on success; the request continues unchanged.
func Auth(tokens TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewForbiddenError("Access denied: token missing").WriteJSON(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewForbiddenError("Access denied: token missing").WriteJSON(w)
				return
			}

			if _, err := tokens.ValidateAccessToken(parts[1]); err != nil {
				model.NewForbiddenError("Invalid token").WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
