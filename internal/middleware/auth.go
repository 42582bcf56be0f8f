package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
)

type contextKey string

const profileIDKey contextKey = "profileID"

// RequireProfile rejects requests without a valid profile bearer token.
func RequireProfile(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ParseToken(raw, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithProfileID(r.Context(), claims.ProfileID)))
		})
	}
}

// WithProfileID stores the authenticated profile ID on ctx.
func WithProfileID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, profileIDKey, id)
}

// ProfileIDFromContext returns the profile ID set by RequireProfile.
func ProfileIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(profileIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
