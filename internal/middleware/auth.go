package middleware

import (
	"context"
	"net/http"
	"strings"

	"couple-space-backend/internal/services"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	coupleIDKey contextKey = "couple_id"
)

// AuthMiddleware creates a middleware for JWT authentication
func AuthMiddleware(userService *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			userID, err := userService.ValidateJWT(parts[1])
			if err != nil {
				respondError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCouple resolves the caller's couple once per request and rejects
// callers who are not paired yet. Must run after AuthMiddleware.
func RequireCouple(userService *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := GetUserID(r.Context())
			if userID == "" {
				respondError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			profile, err := userService.GetProfile(r.Context(), userID)
			if err != nil {
				respondError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if profile.CoupleID == nil {
				respondError(w, "You are not part of a couple yet", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), coupleIDKey, *profile.CoupleID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// GetCoupleID extracts couple ID from context
func GetCoupleID(ctx context.Context) string {
	coupleID, ok := ctx.Value(coupleIDKey).(string)
	if !ok {
		return ""
	}
	return coupleID
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
