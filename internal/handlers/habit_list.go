package handlers

//go:generate mockgen -source=habit_list.go -destination=habit_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/habit-tracker/internal/middlewares"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// HabitLister lists the caller's habits.
type HabitLister interface {
	List(ctx context.Context, ownerID string) ([]models.HabitView, error)
}

// HabitListResponse wraps the caller's habits
// swagger:model HabitListResponse
type HabitListResponse struct {
	Habits []models.HabitView `json:"habits"`
}

// NewHabitListHandler returns an HTTP handler listing habits.
// @Summary List habits
// @Description Anonymous callers get the shared fallback habits
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.HabitListResponse
// @Failure 401 "Invalid session token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/habits [get]
func NewHabitListHandler(svc HabitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		habits, err := svc.List(r.Context(), middlewares.OwnerFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		if habits == nil {
			habits = []models.HabitView{}
		}
		writeJSON(w, http.StatusOK, HabitListResponse{Habits: habits})
	}
}
