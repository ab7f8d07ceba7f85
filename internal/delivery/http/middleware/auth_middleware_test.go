package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func staffUser(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Email: "staff@example.com", Role: role, IsActive: true}
}

func TestAuthenticate_HeaderFailures(t *testing.T) {
	svc := newJWT(15 * time.Minute)
	refresh, _, err := svc.GenerateRefreshToken(uuid.New(), "a@example.com", "admin")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing", "", "Access denied. No token provided."},
		{"no scheme", "token-only", "Invalid authorization header format."},
		{"wrong scheme", "Basic abc", "Invalid authorization header format."},
		{"garbage", "Bearer not-a-jwt", "Invalid token."},
		{"refresh token", "Bearer " + refresh, "Invalid token."},
	}

	resolver := new(mockResolver)
	m := NewAuthMiddleware(svc, resolver, testutil.NewLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(m.Authenticate(okHandler), req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
	resolver.AssertNotCalled(t, "IsTokenValid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	svc := newJWT(-time.Minute)
	user := staffUser(entity.RoleAdmin)
	m := NewAuthMiddleware(svc, new(mockResolver), testutil.NewLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearer(t, svc, user))
	rec := serve(m.Authenticate(okHandler), req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired.", errorMessage(t, rec))
}

func TestAuthenticate_ResolverOutcomes(t *testing.T) {
	svc := newJWT(15 * time.Minute)
	lockedUntil := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		valid   bool
		validEr error
		user    *entity.User
		status  int
		message string
	}{
		{"whitelist error", false, errors.New("redis down"), nil, http.StatusInternalServerError, "Failed to validate token"},
		{"revoked", false, nil, nil, http.StatusUnauthorized, "Token has been revoked."},
		{"user gone", true, nil, nil, http.StatusUnauthorized, "Token is no longer valid."},
		{"deactivated", true, nil, &entity.User{IsActive: false}, http.StatusUnauthorized, "Account has been deactivated."},
		{"locked", true, nil, &entity.User{IsActive: true, LockUntil: &lockedUntil}, http.StatusUnauthorized, "Account is temporarily locked."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claimsUser := staffUser(entity.RoleSupport)
			resolver := new(mockResolver)
			resolver.On("IsTokenValid", mock.Anything, claimsUser.ID, mock.AnythingOfType("string"), jwt.AccessToken).Return(tt.valid, tt.validEr)
			resolver.On("ResolveUser", mock.Anything, claimsUser.ID).Return(tt.user, nil).Maybe()

			m := NewAuthMiddleware(svc, resolver, testutil.NewLogger())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", bearer(t, svc, claimsUser))
			rec := serve(m.Authenticate(okHandler), req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}

func TestAuthenticate_AttachesUserAndToken(t *testing.T) {
	svc := newJWT(15 * time.Minute)
	user := staffUser(entity.RoleCMSEditor)
	token, tokenID, err := svc.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	resolver := new(mockResolver)
	resolver.On("IsTokenValid", mock.Anything, user.ID, tokenID, jwt.AccessToken).Return(true, nil)
	resolver.On("ResolveUser", mock.Anything, user.ID).Return(user, nil)

	var gotUser *entity.User
	var gotID uuid.UUID
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = GetUserFromContext(r.Context())
		gotID, _ = GetUserIDFromContext(r.Context())
		gotToken, _ = GetTokenIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	m := NewAuthMiddleware(svc, resolver, testutil.NewLogger())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := serve(m.Authenticate(next), req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, user, gotUser)
	assert.Equal(t, user.ID, gotID)
	assert.Equal(t, tokenID, gotToken)
	resolver.AssertExpectations(t)
}

func TestOptionalAuth(t *testing.T) {
	svc := newJWT(15 * time.Minute)
	user := staffUser(entity.RoleHRManager)

	resolver := new(mockResolver)
	resolver.On("IsTokenValid", mock.Anything, user.ID, mock.AnythingOfType("string"), jwt.AccessToken).Return(true, nil)
	resolver.On("ResolveUser", mock.Anything, user.ID).Return(user, nil)
	m := NewAuthMiddleware(svc, resolver, testutil.NewLogger())

	var attached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, attached = GetUserFromContext(r.Context())
	})

	serve(m.OptionalAuth(next), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, attached)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer junk")
	rec := serve(m.OptionalAuth(next), req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, attached)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearer(t, svc, user))
	serve(m.OptionalAuth(next), req)
	assert.True(t, attached)
}
