package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/notes-service/internal/logger"
)

// SessionResolver defines the minimal session interface needed by the middleware.
type SessionResolver interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// AuthMiddleware returns a middleware that resolves the session token and
// injects the authenticated user id into the request context. Requests
// without a live session get a 401.
func AuthMiddleware(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := sessions.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			userID, err := sessions.Resolve(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			ctx = SetUserIDToContext(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

// userIDKey is an unexported type for the user id context key
type userIDKey struct{}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
// Returns uuid.Nil if the request did not pass the auth middleware.
func GetUserIDFromContext(ctx context.Context) uuid.UUID {
	userID, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID
}
