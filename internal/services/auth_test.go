package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"github.com/sbilibin2017/habit-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errJWT = errors.New("jwt error")

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		jwtErr       error
		expectRead   bool
		expectWrite  bool
		expectJWT    bool
		wantToken    string
		wantErr      error
	}{
		{
			name:        "successful registration",
			email:       " Alice@Example.com ",
			password:    "pass123",
			expectRead:  true,
			expectWrite: true,
			expectJWT:   true,
			wantToken:   "token",
		},
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "pass123",
			wantErr:  models.ErrValidation,
		},
		{
			name:     "short password",
			email:    "alice@example.com",
			password: "12345",
			wantErr:  models.ErrValidation,
		},
		{
			name:         "user already exists",
			email:        "alice@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{PublicID: "u1"},
			expectRead:   true,
			wantErr:      models.ErrConflict,
		},
		{
			name:       "reader error",
			email:      "alice@example.com",
			password:   "pass123",
			readerErr:  errors.New("db error"),
			expectRead: true,
			wantErr:    models.ErrStorage,
		},
		{
			name:        "duplicate detected on insert",
			email:       "alice@example.com",
			password:    "pass123",
			writerErr:   models.ErrConflict,
			expectRead:  true,
			expectWrite: true,
			wantErr:     models.ErrConflict,
		},
		{
			name:        "writer error",
			email:       "alice@example.com",
			password:    "pass123",
			writerErr:   errors.New("save error"),
			expectRead:  true,
			expectWrite: true,
			wantErr:     models.ErrStorage,
		},
		{
			name:        "token generation fails",
			email:       "alice@example.com",
			password:    "pass123",
			jwtErr:      errJWT,
			expectRead:  true,
			expectWrite: true,
			expectJWT:   true,
			wantErr:     errJWT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			if tt.expectRead {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "alice@example.com").
					Return(tt.existingUser, tt.readerErr)
			}
			if tt.expectWrite {
				mockWriter.EXPECT().
					Save(gomock.Any(), "alice@example.com", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, hash string) (string, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return "u1", tt.writerErr
					})
			}
			if tt.expectJWT {
				mockJWT.EXPECT().Generate(gomock.Any(), "u1").Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Register(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.UserDB{PublicID: "u1", Email: "alice@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		expectJWT bool
		wantToken string
		wantErr   error
	}{
		{
			name:      "success",
			email:     "ALICE@example.com",
			password:  "pass123",
			user:      user,
			expectJWT: true,
			wantToken: "jwt-token",
		},
		{
			name:     "unknown email",
			email:    "alice@example.com",
			password: "pass123",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			user:     user,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   models.ErrStorage,
		},
		{
			name:      "jwt error",
			email:     "alice@example.com",
			password:  "pass123",
			user:      user,
			jwtErr:    errors.New("jwt failure"),
			expectJWT: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT)

			mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(tt.user, tt.readerErr)
			if tt.expectJWT {
				mockJWT.EXPECT().Generate(gomock.Any(), "u1").Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.password)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			case tt.jwtErr != nil:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))
	ctx := context.Background()

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "u1").Return(&models.UserDB{PublicID: "u1"}, nil)
	ok, err := svc.Exists(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "gone").Return(nil, nil)
	ok, err = svc.Exists(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, ok)

	mockReader.EXPECT().GetByPublicID(gomock.Any(), "u2").Return(nil, errors.New("db down"))
	_, err = svc.Exists(ctx, "u2")
	assert.ErrorIs(t, err, models.ErrStorage)
}
