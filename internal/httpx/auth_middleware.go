package httpx

import (
	"context"
	"net/http"
	"strings"

	"locallibrary/internal/platform/crypto"
)

// BlacklistRepository reports whether a token id was revoked by logout.
type BlacklistRepository interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// IdentityMiddleware attaches the bearer token's user to the context.
// Requests without an Authorization header continue anonymously; a header
// carrying an invalid or revoked token is rejected.
func IdentityMiddleware(secret string, blacklistRepo BlacklistRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				Unauthorized(w, r)
				return
			}

			claims, err := crypto.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				Unauthorized(w, r)
				return
			}

			if blacklistRepo != nil {
				revoked, err := blacklistRepo.IsBlacklisted(r.Context(), claims.ID)
				if err != nil || revoked {
					Unauthorized(w, r)
					return
				}
			}

			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserIDFrom(r) == "" {
			Unauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
