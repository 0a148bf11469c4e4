package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()
	userID := uuid.NewString()

	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.NewString())
	require.NoError(t, err)

	got, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)

	got, err := j.GetUserID(context.Background(), "invalid.token.string")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	token, err := New("secret1", time.Minute).Generate(ctx, uuid.NewString())
	require.NoError(t, err)

	_, err = New("secret2", time.Minute).GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_EmptyUserID(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "")
	require.NoError(t, err)

	_, err = j.GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		cookie        string
		expectedToken string
		expectMissing bool
		expectError   bool
	}{
		{name: "ValidBearer", header: "Bearer mytoken123", expectedToken: "mytoken123"},
		{name: "LowercaseBearer", header: "bearer mytoken123", expectedToken: "mytoken123"},
		{name: "Cookie", cookie: "cookietoken", expectedToken: "cookietoken"},
		{name: "HeaderWinsOverCookie", header: "Bearer fromheader", cookie: "fromcookie", expectedToken: "fromheader"},
		{name: "NothingSent", expectError: true, expectMissing: true},
		{name: "InvalidFormat", header: "Token mytoken123", expectError: true},
		{name: "TooManyParts", header: "Bearer a b c", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
				if tt.expectMissing {
					assert.ErrorIs(t, err, ErrTokenMissing)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Cookies(t *testing.T) {
	j := New("secret", time.Hour)

	rr := httptest.NewRecorder()
	j.SetCookie(rr, "tok")
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)

	rr = httptest.NewRecorder()
	j.ClearCookie(rr)
	cookies = rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
