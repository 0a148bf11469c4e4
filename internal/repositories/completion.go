package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

type completionRow struct {
	ID            string `db:"id"`
	HabitID       string `db:"habit_id"`
	CompletedDate string `db:"completed_date"`
}

func (r completionRow) toModel() (models.Completion, error) {
	date, err := models.ParseDate(r.CompletedDate)
	if err != nil {
		return models.Completion{}, fmt.Errorf("%w: completion %s has malformed date %q", models.ErrStorage, r.ID, r.CompletedDate)
	}
	return models.Completion{ID: r.ID, HabitID: r.HabitID, Date: date}, nil
}

// CompletionReadRepository handles completion read operations
type CompletionReadRepository struct {
	db *sqlx.DB
}

func NewCompletionReadRepository(db *sqlx.DB) *CompletionReadRepository {
	return &CompletionReadRepository{db: db}
}

// ListByHabitIDs loads the completions of several habits in one query.
// An empty input returns an empty result without querying the database.
func (r *CompletionReadRepository) ListByHabitIDs(ctx context.Context, habitIDs []string) ([]models.Completion, error) {
	if len(habitIDs) == 0 {
		return []models.Completion{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, habit_id, completed_date
		FROM habit_completions
		WHERE habit_id IN (?)
		ORDER BY completed_date ASC
	`, habitIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var rows []completionRow
	err = sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, args...)

	logQuery(query, args, len(rows), err)

	if err != nil {
		return nil, err
	}

	completions := make([]models.Completion, 0, len(rows))
	for _, row := range rows {
		c, err := row.toModel()
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, nil
}

// Get returns the completion of a habit on a date, or nil when absent.
func (r *CompletionReadRepository) Get(ctx context.Context, habitID string, date models.Date) (*models.Completion, error) {
	query := r.db.Rebind(`
		SELECT id, habit_id, completed_date
		FROM habit_completions
		WHERE habit_id = ? AND completed_date = ?
	`)

	var row completionRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, habitID, date.String())

	logQuery(query, []any{habitID, date.String()}, row.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CompletionWriteRepository handles completion write operations
type CompletionWriteRepository struct {
	db *sqlx.DB
}

func NewCompletionWriteRepository(db *sqlx.DB) *CompletionWriteRepository {
	return &CompletionWriteRepository{db: db}
}

// Save inserts a completion for (habitID, date) and returns it.
// An existing completion for the same pair yields models.ErrConflict.
func (r *CompletionWriteRepository) Save(ctx context.Context, habitID string, date models.Date) (*models.Completion, error) {
	query := r.db.Rebind(`
		INSERT INTO habit_completions (id, habit_id, completed_date, created_at)
		VALUES (?, ?, ?, ?)
	`)
	id := uuid.NewString()
	args := []any{id, habitID, date.String(), time.Now().UTC()}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: habit %s already completed on %s", models.ErrConflict, habitID, date)
	}
	if err != nil {
		return nil, err
	}

	return &models.Completion{ID: id, HabitID: habitID, Date: date}, nil
}

// Delete removes a completion and reports whether it existed.
func (r *CompletionWriteRepository) Delete(ctx context.Context, completionID string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM habit_completions WHERE id = ?`)

	res, err := executor(ctx, r.db).ExecContext(ctx, query, completionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{completionID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteByHabitID removes every completion of a habit and returns how many were removed.
func (r *CompletionWriteRepository) DeleteByHabitID(ctx context.Context, habitID string) (int64, error) {
	query := r.db.Rebind(`DELETE FROM habit_completions WHERE habit_id = ?`)

	res, err := executor(ctx, r.db).ExecContext(ctx, query, habitID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{habitID}, rowsAffected, err)

	return rowsAffected, err
}
