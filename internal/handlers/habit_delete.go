package handlers

//go:generate mockgen -source=habit_delete.go -destination=habit_delete_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/habit-tracker/internal/middlewares"
)

// HabitDeleter removes habits.
type HabitDeleter interface {
	Delete(ctx context.Context, ownerID, name string) error
}

// DeleteHabitRequest represents the JSON body for habit deletion
// swagger:model DeleteHabitRequest
type DeleteHabitRequest struct {
	// required: true
	// default: Read
	HabitName string `json:"habitName" validate:"required"`
}

// NewHabitDeleteHandler returns an HTTP handler deleting a habit with its completions.
// @Summary Delete habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deleteHabitRequest body handlers.DeleteHabitRequest true "Delete Request"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Habit name is required"
// @Failure 401 "Invalid session token"
// @Failure 404 {object} handlers.ErrorResponse "Habit not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/habits [delete]
func NewHabitDeleteHandler(svc HabitDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteHabitRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), middlewares.OwnerFromContext(r.Context()), req.HabitName); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
