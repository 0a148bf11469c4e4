package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse carries the issued session token
// swagger:model AuthResponse
type AuthResponse struct {
	// default: true
	Success bool `json:"success"`

	// JWT token, also set as the session cookie
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.AuthResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth [post]
func NewRegisterHandler(svc Registerer, cookies SessionCookier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		token, err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		cookies.SetCookie(w, token)
		writeJSON(w, http.StatusCreated, AuthResponse{Success: true, Token: token})
	}
}
