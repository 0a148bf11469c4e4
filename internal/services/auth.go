package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByPublicID(ctx context.Context, publicID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, passwordHash string) (string, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      JWTGenerator
	validate *validator.Validate
	cost     int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		validate: validator.New(),
		cost:     bcrypt.DefaultCost,
	}
}

// Register creates a user and returns a session token for it.
func (svc *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if err := svc.validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, MinPasswordLength)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return "", storageError("failed to check user exists", err)
	}
	if user != nil {
		logger.Log.Infow("user already exists", "email", email)
		return "", fmt.Errorf("%w: email already registered", models.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	publicID, err := svc.writer.Save(ctx, email, string(hashedPassword))
	if err != nil {
		return "", storageError("failed to save user", err)
	}

	return svc.issue(ctx, publicID)
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return "", storageError("failed to get user", err)
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	return svc.issue(ctx, user.PublicID)
}

// Exists reports whether the session owner still has an account.
func (svc *AuthService) Exists(ctx context.Context, publicID string) (bool, error) {
	user, err := svc.reader.GetByPublicID(ctx, publicID)
	if err != nil {
		return false, storageError("failed to get user", err)
	}
	return user != nil, nil
}

func (svc *AuthService) issue(ctx context.Context, publicID string) (string, error) {
	token, err := svc.jwt.Generate(ctx, publicID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
