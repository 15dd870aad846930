package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/notes-service/internal/logger"
	"github.com/sbilibin2017/notes-service/internal/sessions"
	"github.com/sbilibin2017/notes-service/internal/validation"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, passwordConfirm, email, phone string) (string, validation.FieldErrors, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Password confirmation, must match the password; never stored
	// required: true
	// default: secret123
	PasswordConfirm string `json:"password_confirm"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Phone number, 11 digits with optional leading +
	// required: true
	// default: +79991234567
	Phone string `json:"phone"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Session token for the auto-login session, also set as a cookie
	// default: SESSION_TOKEN
	Token string `json:"token"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Field-level validation errors
	Errors validation.FieldErrors `json:"errors,omitempty"`

	// Error message
	// default: Internal server error
	Error string `json:"error,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// On success the new user is logged in right away and receives a session cookie.
// @Summary Register a new user
// @Description Validates username uniqueness, password confirmation and phone format. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered and logged in"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failed / invalid request"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, fieldErrs, err := svc.Register(r.Context(),
			req.Username, req.Password, req.PasswordConfirm, req.Email, req.Phone)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if !fieldErrs.Empty() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Errors: fieldErrs,
			})
			return
		}

		http.SetCookie(w, sessions.Cookie(token, false))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User registered successfully",
			Token:   token,
		})
	}
}
