package jwt

import (
	"errors"
	"testing"
	"time"

	"teleradiology-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := newService()
	uid := uuid.New()

	token, tid, err := svc.GenerateAccessToken(uid, "doc@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tid)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, "doc@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tid, claims.TokenID)
}

func TestRefreshToken_UsesOwnSecret(t *testing.T) {
	svc := newService()
	token, _, err := svc.GenerateRefreshToken(uuid.New(), "a@b.co", "user")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongTypeWithSharedSecret(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "shared", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	token, _, err := svc.GenerateRefreshToken(uuid.New(), "a@b.co", "user")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestValidate_Expired(t *testing.T) {
	svc := newService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.co", "user")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidate_Garbage(t *testing.T) {
	_, err := newService().ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
