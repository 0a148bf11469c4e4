package handlers

//go:generate mockgen -source=habit_create.go -destination=habit_create_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/habit-tracker/internal/middlewares"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// HabitCreator creates habits.
type HabitCreator interface {
	Create(ctx context.Context, ownerID string, in models.NewHabit) (models.HabitView, error)
}

// CreateHabitRequest represents the JSON body for habit creation
// swagger:model CreateHabitRequest
type CreateHabitRequest struct {
	// Habit name, unique per user
	// required: true
	// default: Read
	Name string `json:"name" validate:"required"`

	// Optional description
	// default: 20 pages a day
	Description string `json:"description"`

	// Palette color name, blue when unknown
	// default: green
	Color string `json:"color"`
}

// CreateHabitResponse returns the created habit
// swagger:model CreateHabitResponse
type CreateHabitResponse struct {
	// default: true
	Success bool             `json:"success"`
	Habit   models.HabitView `json:"habit"`
}

// NewHabitCreateHandler returns an HTTP handler creating a habit.
// @Summary Create habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createHabitRequest body handlers.CreateHabitRequest true "Create Habit Request"
// @Success 201 {object} handlers.CreateHabitResponse
// @Failure 400 {object} handlers.ErrorResponse "Habit name is required"
// @Failure 401 "Invalid session token"
// @Failure 409 {object} handlers.ErrorResponse "Habit already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/habits [post]
func NewHabitCreateHandler(svc HabitCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateHabitRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		habit, err := svc.Create(r.Context(), middlewares.OwnerFromContext(r.Context()), models.NewHabit{
			Name:        req.Name,
			Description: req.Description,
			Color:       req.Color,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateHabitResponse{Success: true, Habit: habit})
	}
}
