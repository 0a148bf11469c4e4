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

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getBy(ctx, "email", email)
}

// GetByPublicID returns the user with the given public identifier, or nil when there is none.
func (r *UserReadRepository) GetByPublicID(ctx context.Context, publicID string) (*models.UserDB, error) {
	return r.getBy(ctx, "public_id", publicID)
}

func (r *UserReadRepository) getBy(ctx context.Context, column, value string) (*models.UserDB, error) {
	query := r.db.Rebind(`
		SELECT public_id, email, hashed_password, created_at
		FROM users
		WHERE ` + column + ` = ?
	`)

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, value)

	logQuery(query, []any{value}, user.PublicID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its generated public identifier.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (string, error) {
	query := r.db.Rebind(`
		INSERT INTO users (email, hashed_password, public_id, created_at)
		VALUES (?, ?, ?, ?)
	`)
	publicID := uuid.NewString()
	args := []any{email, passwordHash, publicID, time.Now().UTC()}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Never log the password hash
	logQuery(query, []any{email, publicID}, rowsAffected, err)

	if isUniqueViolation(err) {
		return "", fmt.Errorf("%w: email already exists", models.ErrConflict)
	}
	if err != nil {
		return "", err
	}

	return publicID, nil
}
