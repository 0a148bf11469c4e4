package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	publicID, err := writer.Save(ctx, "alice@example.com", "hashed")
	require.NoError(t, err)

	_, err = uuid.Parse(publicID)
	assert.NoError(t, err, "public id should be a uuid")

	var user struct {
		Email    string `db:"email"`
		Password string `db:"hashed_password"`
	}
	err = db.Get(&user, "SELECT email, hashed_password FROM users WHERE public_id = ?", publicID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	_, err := writer.Save(ctx, "bob@example.com", "h1")
	require.NoError(t, err)

	_, err = writer.Save(ctx, "bob@example.com", "h2")
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUserReadRepository_Get(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	publicID := createUser(t, db, "charlie@example.com")
	reader := NewUserReadRepository(db)

	t.Run("ByEmail", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "charlie@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, publicID, user.PublicID)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("ByPublicID", func(t *testing.T) {
		user, err := reader.GetByPublicID(ctx, publicID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
