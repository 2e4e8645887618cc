package middleware

import (
	"net/http"

	"github.com/zatekoja/benchmap/internal/infrastructure/auth"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
)

// TokenVerifier resolves an access token to a user id
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware attaches the actor to the request context when a valid token
// is present. Invalid or missing tokens leave the request anonymous; handlers
// decide whether that is acceptable.
func AuthMiddleware(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.TokenFromRequest(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				observability.LoggerFromContext(r.Context()).Debug().Err(err).Msg("Ignoring invalid access token")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), userID)))
		})
	}
}
