package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"teleradiology-api/config"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/service"
	"teleradiology-api/pkg/jwt"
	"teleradiology-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type RateLimitMiddleware struct {
	limiter    service.RateLimiter
	cfg        config.RateLimitConfig
	jwtService *jwt.JWTService
	resolver   TokenResolver
	log        *logrus.Logger
}

func NewRateLimitMiddleware(limiter service.RateLimiter, cfg config.RateLimitConfig, jwtService *jwt.JWTService, resolver TokenResolver, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:    limiter,
		cfg:        cfg,
		jwtService: jwtService,
		resolver:   resolver,
		log:        log,
	}
}

// API limits every request. Active staff carrying a whitelisted access token
// are exempt.
func (m *RateLimitMiddleware) API(next http.Handler) http.Handler {
	return m.limit("api", m.cfg.Max, m.cfg.Window, true, next)
}

// Auth limits credential endpoints.
func (m *RateLimitMiddleware) Auth(next http.Handler) http.Handler {
	return m.limit("auth", m.cfg.AuthMax, m.cfg.Window, false, next)
}

// Form limits public submission endpoints.
func (m *RateLimitMiddleware) Form(next http.Handler) http.Handler {
	return m.limit("form", m.cfg.FormMax, m.cfg.FormWindow, false, next)
}

func (m *RateLimitMiddleware) limit(scope string, maxHits int, window time.Duration, skipStaff bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maxHits <= 0 || window <= 0 || (skipStaff && m.isStaff(r)) {
			next.ServeHTTP(w, r)
			return
		}

		res, err := m.limiter.Allow(r.Context(), scope+":"+ClientIP(r), maxHits, window)
		if err != nil {
			// fail open
			m.log.Warnf("Failed to check rate limit: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			response.TooManyRequests(w, "")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) isStaff(r *http.Request) bool {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return false
	}
	claims, err := m.jwtService.ValidateAccessToken(parts[1])
	if err != nil || !entity.Role(claims.Role).IsStaff() {
		return false
	}

	// the claim alone outlives revocation and demotion
	valid, err := m.resolver.IsTokenValid(r.Context(), claims.UserID, claims.TokenID, jwt.AccessToken)
	if err != nil {
		m.log.Warnf("Failed to validate token for rate limit: %+v", err)
		return false
	}
	if !valid {
		return false
	}
	user, err := m.resolver.ResolveUser(r.Context(), claims.UserID)
	if err != nil || user == nil {
		return false
	}
	return user.IsActive && user.Role.IsStaff()
}
