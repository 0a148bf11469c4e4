package handlers

//go:generate mockgen -source=habit_toggle.go -destination=habit_toggle_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/habit-tracker/internal/middlewares"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// HabitToggler flips a day's completion.
type HabitToggler interface {
	Toggle(ctx context.Context, ownerID, name string, date models.Date) (models.ToggleResult, error)
}

// ToggleHabitRequest represents the JSON body for a completion toggle
// swagger:model ToggleHabitRequest
type ToggleHabitRequest struct {
	// required: true
	// default: Read
	HabitName string `json:"habitName" validate:"required"`

	// Calendar day as YYYY-MM-DD
	// required: true
	// default: 2024-01-05
	Date string `json:"date" validate:"required"`
}

// ToggleHabitResponse reports the state after the toggle
// swagger:model ToggleHabitResponse
type ToggleHabitResponse struct {
	// default: true
	Success bool `json:"success"`
	models.ToggleResult
}

// NewHabitToggleHandler returns an HTTP handler toggling a day's completion.
// @Summary Toggle completion
// @Description Marks the day completed when it is open and clears it otherwise
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param toggleHabitRequest body handlers.ToggleHabitRequest true "Toggle Request"
// @Success 200 {object} handlers.ToggleHabitResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 401 "Invalid session token"
// @Failure 404 {object} handlers.ErrorResponse "Habit not found"
// @Failure 409 {object} handlers.ErrorResponse "Concurrent toggle"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/habits [patch]
func NewHabitToggleHandler(svc HabitToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ToggleHabitRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		date, err := models.ParseDate(req.Date)
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := svc.Toggle(r.Context(), middlewares.OwnerFromContext(r.Context()), req.HabitName, date)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToggleHabitResponse{Success: true, ToggleResult: res})
	}
}
