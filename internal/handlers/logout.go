package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/notes-service/internal/logger"
	"github.com/sbilibin2017/notes-service/internal/sessions"
)

// SessionDestroyer defines the session operations needed for logout.
type SessionDestroyer interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Destroy(ctx context.Context, token string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler that terminates the session.
// The session is revoked server-side, so the token stops working even if the
// client keeps it.
// @Summary Logout
// @Description Revokes the current session and clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session terminated"
// @Failure 401 {object} handlers.LogoutErrorResponse "Unauthorized"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(store SessionDestroyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		token, err := store.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if err := store.Destroy(ctx, token); err != nil {
			logger.Log.Errorw("failed to destroy session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		http.SetCookie(w, sessions.ExpiredCookie())
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
