package api

import (
	"crypto/hmac"
	"encoding/json"
	"net/http"
	"strings"
)

// SuperadminKeyHeader carries the shared admin credential on every guarded request.
const SuperadminKeyHeader = "X-Superadmin-Key"

// RequireSuperadminKey guards a subrouter behind the shared superadmin key.
// The check is constant-time and re-done per request; there is no session.
func RequireSuperadminKey(expectedKey string) func(http.Handler) http.Handler {
	expected := strings.TrimSpace(expectedKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				writeAuthError(w, http.StatusInternalServerError, "SUPERADMIN_KEY is not configured")
				return
			}

			provided := strings.TrimSpace(r.Header.Get(SuperadminKeyHeader))
			if provided == "" {
				writeAuthError(w, http.StatusUnauthorized, "Missing superadmin key")
				return
			}

			if !hmac.Equal([]byte(provided), []byte(expected)) {
				writeAuthError(w, http.StatusUnauthorized, "Invalid superadmin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": message, "details": nil})
}
