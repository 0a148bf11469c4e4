package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/colors"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// habitRow is the habits table layout; colors are stored as hex.
type habitRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Color       string         `db:"color"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r habitRow) toModel() models.Habit {
	return models.Habit{
		ID:          r.ID,
		OwnerID:     r.UserID,
		Name:        r.Name,
		Description: r.Description.String,
		Color:       colors.FromHex(r.Color),
		CreatedAt:   r.CreatedAt,
	}
}

// HabitReadRepository handles habit read operations
type HabitReadRepository struct {
	db *sqlx.DB
}

func NewHabitReadRepository(db *sqlx.DB) *HabitReadRepository {
	return &HabitReadRepository{db: db}
}

// ListByOwner returns the owner's habits ordered by creation time.
func (r *HabitReadRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, name, description, color, created_at
		FROM habits
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`)

	var rows []habitRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, ownerID)

	logQuery(query, []any{ownerID}, len(rows), err)

	if err != nil {
		return nil, err
	}

	habits := make([]models.Habit, 0, len(rows))
	for _, row := range rows {
		habits = append(habits, row.toModel())
	}
	return habits, nil
}

// GetByOwnerAndName returns the owner's habit with the given name, or nil when absent.
func (r *HabitReadRepository) GetByOwnerAndName(ctx context.Context, ownerID, name string) (*models.Habit, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, name, description, color, created_at
		FROM habits
		WHERE user_id = ? AND name = ?
	`)

	var row habitRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, ownerID, name)

	logQuery(query, []any{ownerID, name}, row.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	habit := row.toModel()
	return &habit, nil
}

// HabitWriteRepository handles habit write operations
type HabitWriteRepository struct {
	db *sqlx.DB
}

func NewHabitWriteRepository(db *sqlx.DB) *HabitWriteRepository {
	return &HabitWriteRepository{db: db}
}

// Save inserts a new habit. A duplicate name for the same owner yields models.ErrConflict.
func (r *HabitWriteRepository) Save(ctx context.Context, habit models.Habit) error {
	query := r.db.Rebind(`
		INSERT INTO habits (id, user_id, name, description, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	description := sql.NullString{String: habit.Description, Valid: habit.Description != ""}
	args := []any{
		habit.ID, habit.OwnerID, habit.Name, description,
		colors.ToHex(habit.Color), habit.CreatedAt, habit.CreatedAt,
	}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if isUniqueViolation(err) {
		return fmt.Errorf("%w: habit %q already exists", models.ErrConflict, habit.Name)
	}
	return err
}

// Delete removes a habit row and reports whether it existed.
// Callers that need the completions gone too run it with CompletionWriteRepository.DeleteByHabitID
// inside one transaction.
func (r *HabitWriteRepository) Delete(ctx context.Context, habitID string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM habits WHERE id = ?`)

	res, err := executor(ctx, r.db).ExecContext(ctx, query, habitID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{habitID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
