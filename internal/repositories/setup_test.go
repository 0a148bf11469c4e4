package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/stretchr/testify/require"
)

// setupSQLite opens a fresh file-backed SQLite database with the schema applied.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "habits.db")
	db, err := Open(context.Background(), DriverSQLite, SQLiteDSN(path))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

// --- Helpers ---
func createUser(t *testing.T, db *sqlx.DB, email string) string {
	t.Helper()
	publicID, err := NewUserWriteRepository(db).Save(context.Background(), email, "hash")
	require.NoError(t, err)
	return publicID
}

func createHabit(t *testing.T, db *sqlx.DB, id, ownerID, name string, createdAt time.Time) models.Habit {
	t.Helper()
	habit := models.Habit{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Color:     "green",
		CreatedAt: createdAt,
	}
	require.NoError(t, NewHabitWriteRepository(db).Save(context.Background(), habit))
	return habit
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}
