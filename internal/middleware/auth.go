package middleware

import (
	"net/http"

	"pedidos-be/internal/auth"
	"pedidos-be/internal/logger"

	"go.uber.org/zap"
)

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Auth attaches the identity carried by the first valid access token to the
// request context. The bearer header is tried before the login cookie, so a
// stale cookie never hides a valid header. Requests without a valid token stay
// anonymous; resolvers that need a seller reject them.
func Auth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, raw := range auth.AccessTokens(r) {
				id, err := tokens.Verify(raw)
				if err != nil {
					logger.FromCtx(r.Context()).Debug("ignoring invalid access token", zap.Error(err))
					continue
				}

				next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
