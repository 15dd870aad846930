package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "session-1", time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"))

	ctx := context.Background()
	token, err := j.Generate(ctx, uuid.New(), "session-1", -time.Minute) // already expired
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_NoExpiration(t *testing.T) {
	j := New(WithSecretKey("test-secret"))

	ctx := context.Background()
	userID := uuid.New()

	// ttl <= 0 means no exp claim: the remember-me token never expires on its own
	token, err := j.Generate(ctx, userID, "session-1", 0)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	j := New(WithSecretKey("test-secret"))
	token, err := j.Generate(ctx, uuid.New(), "session-1", time.Minute)
	assert.NoError(t, err)

	other := New(WithSecretKey("other-secret"))
	err = other.Validate(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(r *http.Request)
		expected  string
		expectErr bool
	}{
		{
			name: "from cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
			},
			expected: "cookie-token",
		},
		{
			name: "from bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			expected: "header-token",
		},
		{
			name: "cookie wins over header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			expected: "cookie-token",
		},
		{
			name:      "missing both",
			setup:     func(r *http.Request) {},
			expectErr: true,
		},
		{
			name: "malformed header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Token abc")
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, token)
			}
		})
	}
}
