package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/jwt"
	"teleradiology-api/pkg/response"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	UserKey    contextKey = "user"
	TokenIDKey contextKey = "token_id"
)

// TokenResolver checks the token whitelist and loads the token's owner.
type TokenResolver interface {
	IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	ResolveUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	resolver   TokenResolver
	log        *logrus.Logger
	now        func() time.Time
}

func NewAuthMiddleware(jwtService *jwt.JWTService, resolver TokenResolver, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
		log:        log,
		now:        time.Now,
	}
}

type authFailure struct {
	status  int
	message string
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, fail := m.authenticate(r)
		if fail != nil {
			response.Error(w, fail.status, fail.message, nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the user when a valid token is present and never
// rejects the request.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			if ctx, fail := m.authenticate(r); fail == nil {
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) authenticate(r *http.Request) (context.Context, *authFailure) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, &authFailure{http.StatusUnauthorized, "Access denied. No token provided."}
	}

	// Extract token from "Bearer <token>"
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, &authFailure{http.StatusUnauthorized, "Invalid authorization header format."}
	}

	claims, err := m.jwtService.ValidateAccessToken(parts[1])
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return nil, &authFailure{http.StatusUnauthorized, "Token has expired."}
	case errors.Is(err, jwt.ErrInvalidTokenType):
		return nil, &authFailure{http.StatusUnauthorized, "Invalid token type."}
	case err != nil:
		return nil, &authFailure{http.StatusUnauthorized, "Invalid token."}
	}

	// Check if token is still whitelisted
	valid, err := m.resolver.IsTokenValid(r.Context(), claims.UserID, claims.TokenID, jwt.AccessToken)
	if err != nil {
		m.log.Warnf("Failed to validate token: %+v", err)
		return nil, &authFailure{http.StatusInternalServerError, "Failed to validate token"}
	}
	if !valid {
		return nil, &authFailure{http.StatusUnauthorized, "Token has been revoked."}
	}

	user, err := m.resolver.ResolveUser(r.Context(), claims.UserID)
	if err != nil {
		return nil, &authFailure{http.StatusInternalServerError, "Failed to validate token"}
	}
	if user == nil {
		return nil, &authFailure{http.StatusUnauthorized, "Token is no longer valid."}
	}
	if !user.IsActive {
		return nil, &authFailure{http.StatusUnauthorized, "Account has been deactivated."}
	}
	if user.IsLocked(m.now()) {
		return nil, &authFailure{http.StatusUnauthorized, "Account is temporarily locked."}
	}

	ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
	ctx = context.WithValue(ctx, UserKey, user)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx, nil
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserFromContext returns the authenticated user loaded by the middleware.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok && user != nil
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
