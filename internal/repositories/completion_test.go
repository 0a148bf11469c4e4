package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRepositories_SaveGetDelete(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	owner := createUser(t, db, "alice@example.com")
	createHabit(t, db, "h1", owner, "Read", time.Now().UTC())

	writer := NewCompletionWriteRepository(db)
	reader := NewCompletionReadRepository(db)
	date := mustDate(t, "2024-01-05")

	saved, err := writer.Save(ctx, "h1", date)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, date, saved.Date)

	got, err := reader.Get(ctx, "h1", date)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)

	missing, err := reader.Get(ctx, "h1", mustDate(t, "2024-01-06"))
	assert.NoError(t, err)
	assert.Nil(t, missing)

	found, err := writer.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = writer.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, found)

	got, err = reader.Get(ctx, "h1", date)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompletionWriteRepository_Save_Duplicate(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	owner := createUser(t, db, "alice@example.com")
	createHabit(t, db, "h1", owner, "Read", time.Now().UTC())

	writer := NewCompletionWriteRepository(db)
	date := mustDate(t, "2024-01-05")

	_, err := writer.Save(ctx, "h1", date)
	require.NoError(t, err)

	_, err = writer.Save(ctx, "h1", date)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestCompletionWriteRepository_Save_Concurrent(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	owner := createUser(t, db, "alice@example.com")
	createHabit(t, db, "h1", owner, "Read", time.Now().UTC())

	writer := NewCompletionWriteRepository(db)
	date := mustDate(t, "2024-01-05")

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = writer.Save(ctx, "h1", date)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, models.ErrConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM habit_completions WHERE habit_id = ?", "h1"))
	assert.Equal(t, 1, count)
}

func TestCompletionReadRepository_ListByHabitIDs(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	owner := createUser(t, db, "alice@example.com")
	createHabit(t, db, "h1", owner, "Read", time.Now().UTC())
	createHabit(t, db, "h2", owner, "Run", time.Now().UTC())
	createHabit(t, db, "h3", owner, "Sleep", time.Now().UTC())

	writer := NewCompletionWriteRepository(db)
	for _, c := range []struct{ habit, date string }{
		{"h1", "2024-01-07"},
		{"h1", "2024-01-05"},
		{"h2", "2024-01-06"},
		{"h3", "2024-01-01"},
	} {
		_, err := writer.Save(ctx, c.habit, mustDate(t, c.date))
		require.NoError(t, err)
	}

	completions, err := NewCompletionReadRepository(db).ListByHabitIDs(ctx, []string{"h1", "h2"})
	require.NoError(t, err)
	require.Len(t, completions, 3)

	byHabit := map[string][]string{}
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c.Date.String())
	}
	assert.Equal(t, []string{"2024-01-05", "2024-01-07"}, byHabit["h1"])
	assert.Equal(t, []string{"2024-01-06"}, byHabit["h2"])
	assert.NotContains(t, byHabit, "h3")
}

func TestCompletionReadRepository_ListByHabitIDs_Empty(t *testing.T) {
	db := setupSQLite(t)

	completions, err := NewCompletionReadRepository(db).ListByHabitIDs(context.Background(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, completions)
	assert.Empty(t, completions)
}

func TestCompletionWriteRepository_DeleteByHabitID(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	owner := createUser(t, db, "alice@example.com")
	createHabit(t, db, "h1", owner, "Read", time.Now().UTC())
	createHabit(t, db, "h2", owner, "Run", time.Now().UTC())

	writer := NewCompletionWriteRepository(db)
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := writer.Save(ctx, "h1", mustDate(t, d))
		require.NoError(t, err)
	}
	_, err := writer.Save(ctx, "h2", mustDate(t, "2024-01-01"))
	require.NoError(t, err)

	removed, err := writer.DeleteByHabitID(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	remaining, err := NewCompletionReadRepository(db).ListByHabitIDs(ctx, []string{"h1", "h2"})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "h2", remaining[0].HabitID)
}
