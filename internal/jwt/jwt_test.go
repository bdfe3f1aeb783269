package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	playerID := uuid.New()
	ctx := context.Background()

	token, err := j.GenerateAccessToken(ctx, playerID, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, playerID, claims.PlayerID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired
	ctx := context.Background()

	token, err := j.GenerateAccessToken(ctx, uuid.New(), "bob@example.com")
	require.NoError(t, err)

	err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.GenerateAccessToken(ctx, uuid.New(), "carol@example.com")
	require.NoError(t, err)

	err = j2.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWT_SecretNotConfigured(t *testing.T) {
	j := New()
	ctx := context.Background()

	_, err := j.GenerateAccessToken(ctx, uuid.New(), "dan@example.com")
	assert.ErrorIs(t, err, ErrSecretNotConfigured)

	_, _, err = j.GenerateRefreshToken(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSecretNotConfigured)

	_, err = j.GetClaims(ctx, "a.b.c")
	assert.ErrorIs(t, err, ErrSecretNotConfigured)

	_, err = j.GetRefreshClaims(ctx, "a.b.c")
	assert.ErrorIs(t, err, ErrSecretNotConfigured)
}

func TestJWT_RefreshToken(t *testing.T) {
	j := New(
		WithSecretKey("access-secret"),
		WithRefreshSecretKey("refresh-secret"),
		WithRefreshExpiration(time.Hour),
	)
	ctx := context.Background()
	playerID := uuid.New()

	token, tokenID, err := j.GenerateRefreshToken(ctx, playerID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := j.GetRefreshClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)

	gotID, err := claims.PlayerID()
	require.NoError(t, err)
	assert.Equal(t, playerID, gotID)

	// A refresh token is not an access token
	_, err = j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Every refresh token gets its own id
	_, otherID, err := j.GenerateRefreshToken(ctx, playerID)
	require.NoError(t, err)
	assert.NotEqual(t, tokenID, otherID)
}

func TestJWT_RefreshToken_Expired(t *testing.T) {
	j := New(WithRefreshSecretKey("refresh-secret"), WithRefreshExpiration(-time.Minute))
	ctx := context.Background()

	token, _, err := j.GenerateRefreshToken(ctx, uuid.New())
	require.NoError(t, err)

	_, err = j.GetRefreshClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWT_AccessTokenRejectedAsRefresh(t *testing.T) {
	j := New(WithSecretKey("same"), WithRefreshSecretKey("same"))
	ctx := context.Background()

	token, err := j.GenerateAccessToken(ctx, uuid.New(), "eve@example.com")
	require.NoError(t, err)

	_, err = j.GetRefreshClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		cookie        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "", "mytoken123", false},
		{"Cookie", "", "cookietoken", "cookietoken", false},
		{"CookieWins", "Bearer headertoken", "cookietoken", "cookietoken", false},
		{"NoHeader", "", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", "", true},
		{"TooManyParts", "Bearer a b c", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tt.cookie})
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_GetRefreshTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "/auth/refresh", nil)
	_, err := j.GetRefreshTokenFromRequest(ctx, req)
	assert.ErrorIs(t, err, ErrTokenMissing)

	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "refresh"})
	token, err := j.GetRefreshTokenFromRequest(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "refresh", token)
}
