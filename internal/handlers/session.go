package handlers

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/habit-tracker/internal/middlewares"
)

// SessionChecker reports whether a session owner still has an account.
type SessionChecker interface {
	Exists(ctx context.Context, publicID string) (bool, error)
}

// CheckResponse reports the session state
// swagger:model CheckResponse
type CheckResponse struct {
	// default: true
	Authenticated bool `json:"authenticated"`
}

// NewCheckHandler returns an HTTP handler reporting whether the caller is logged in.
// @Summary Session check
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.CheckResponse
// @Failure 401 "Invalid session token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/check [get]
func NewCheckHandler(svc SessionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := middlewares.OwnerFromContext(r.Context())
		if ownerID == "" {
			writeJSON(w, http.StatusOK, CheckResponse{Authenticated: false})
			return
		}

		exists, err := svc.Exists(r.Context(), ownerID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CheckResponse{Authenticated: exists})
	}
}

// NewLogoutHandler returns an HTTP handler that ends the session.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse
// @Router /api/auth/logout [post]
func NewLogoutHandler(cookies SessionCookier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookies.ClearCookie(w)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
