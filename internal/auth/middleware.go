package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/quizgenius/quizgenius/internal/config"
)

// AuthMiddleware enforces a Bearer token when authentication is enabled and
// is a no-op otherwise.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			config.Error(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Rejected invalid token")
			config.Error(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
