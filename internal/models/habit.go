package models

import "time"

// Habit is a tracked activity with its color already decoded to a palette name
type Habit struct {
	ID          string    `json:"id"`          // Opaque habit identifier
	OwnerID     string    `json:"user_id"`     // Public identifier of the owning user
	Name        string    `json:"name"`        // Unique per owner
	Description string    `json:"description"` // Optional, empty when unset
	Color       string    `json:"color"`       // Palette color name
	CreatedAt   time.Time `json:"created_at"`  // Creation timestamp
}

// Completion marks a habit as done on a calendar day
type Completion struct {
	ID      string `json:"id"`             // Opaque completion identifier
	HabitID string `json:"habit_id"`       // Owning habit
	Date    Date   `json:"completed_date"` // Calendar day of completion
}

// NewHabit is the input accepted when creating a habit
type NewHabit struct {
	Name        string
	Description string
	Color       string
}

// HabitView is the read shape returned by every habit backend
// swagger:model HabitView
type HabitView struct {
	// Habit name
	// example: Read
	Name string `json:"name"`

	// Optional description
	// example: 20 pages a day
	Description string `json:"description"`

	// Palette color name
	// example: green
	Color string `json:"color"`

	// Creation time in epoch milliseconds
	// example: 1704067200000
	CreatedDate int64 `json:"createdDate"`

	// Completed calendar days, ascending
	// example: ["2024-01-05"]
	CompletedDates []string `json:"completedDates"`
}

// ToggleResult describes the completion state after a toggle
// swagger:model ToggleResult
type ToggleResult struct {
	// Habit name
	// example: Read
	HabitName string `json:"habitName"`

	// Toggled calendar day
	// example: 2024-01-05
	Date string `json:"date"`

	// Whether the day is completed after the toggle
	// example: true
	Completed bool `json:"completed"`
}
