package models

// Habit event operations published to the event stream.
const (
	OperationHabitCreated     = "habit_created"
	OperationHabitDeleted     = "habit_deleted"
	OperationHabitCompleted   = "habit_completed"
	OperationHabitUncompleted = "habit_uncompleted"
)

// HabitEvent describes a mutation of a user's habits.
type HabitEvent struct {
	EventID   string `json:"event_id"`       // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`      // Timestamp is the Unix timestamp (in seconds) when the change happened.
	UserID    string `json:"user_id"`        // UserID is the public identifier of the habit owner.
	HabitName string `json:"habit_name"`     // HabitName is the name of the affected habit.
	Operation string `json:"operation"`      // Operation is one of the Operation* constants.
	Date      string `json:"date,omitempty"` // Date is the toggled calendar day, for completion events.
}
