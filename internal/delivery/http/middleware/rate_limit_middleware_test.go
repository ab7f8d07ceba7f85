package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"teleradiology-api/config"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/service"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (service.RateResult, error) {
	return service.RateResult{}, errors.New("redis unavailable")
}

func rateLimitConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Window:     time.Hour,
		Max:        2,
		AuthMax:    1,
		FormMax:    2,
		FormWindow: time.Hour,
	}
}

func newRateLimit(limiter service.RateLimiter, cfg config.RateLimitConfig, svc *jwt.JWTService, resolver TokenResolver) *RateLimitMiddleware {
	return NewRateLimitMiddleware(limiter, cfg, svc, resolver, testutil.NewLogger())
}

func fromIP(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = ip + ":40000"
	return req
}

func TestRateLimit_FormBlocksAfterMax(t *testing.T) {
	m := newRateLimit(service.NewMemoryRateLimiter(), rateLimitConfig(), newJWT(time.Minute), new(mockResolver))
	h := m.Form(okHandler)

	first := serve(h, fromIP("10.0.0.1"))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, serve(h, fromIP("10.0.0.1")).Code)

	blocked := serve(h, fromIP("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "Too many requests, please try again later.", errorMessage(t, blocked))
	retry, err := strconv.Atoi(blocked.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Positive(t, retry)

	// other clients keep their own bucket
	assert.Equal(t, http.StatusOK, serve(h, fromIP("10.0.0.2")).Code)
}

func TestRateLimit_ScopesAreIndependent(t *testing.T) {
	m := newRateLimit(service.NewMemoryRateLimiter(), rateLimitConfig(), newJWT(time.Minute), new(mockResolver))

	assert.Equal(t, http.StatusOK, serve(m.Auth(okHandler), fromIP("10.0.0.3")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(m.Auth(okHandler), fromIP("10.0.0.3")).Code)
	assert.Equal(t, http.StatusOK, serve(m.Form(okHandler), fromIP("10.0.0.3")).Code)
}

func TestRateLimit_ForwardedHeadersFromUntrustedPeerIgnored(t *testing.T) {
	realIP, err := NewRealIPMiddleware(nil)
	require.NoError(t, err)
	m := newRateLimit(service.NewMemoryRateLimiter(), rateLimitConfig(), newJWT(time.Minute), new(mockResolver))
	h := realIP.Handle(m.Auth(okHandler))

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := fromIP("10.0.0.9")
		req.Header.Set("X-Forwarded-For", "198.51.100."+strconv.Itoa(i+1))
		req.Header.Set("X-Real-IP", "203.0.113."+strconv.Itoa(i+1))
		codes = append(codes, serve(h, req).Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	for _, code := range codes[1:] {
		assert.Equal(t, http.StatusTooManyRequests, code)
	}
}

func TestRateLimit_TrustedProxyKeysByForwardedClient(t *testing.T) {
	realIP, err := NewRealIPMiddleware([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	m := newRateLimit(service.NewMemoryRateLimiter(), rateLimitConfig(), newJWT(time.Minute), new(mockResolver))
	h := realIP.Handle(m.Auth(okHandler))

	for _, client := range []string{"198.51.100.1", "198.51.100.2"} {
		req := fromIP("10.1.2.3")
		req.Header.Set("X-Forwarded-For", client)
		assert.Equal(t, http.StatusOK, serve(h, req).Code)
	}

	req := fromIP("10.1.2.3")
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	assert.Equal(t, http.StatusTooManyRequests, serve(h, req).Code)
}

func TestRateLimit_APISkipsActiveStaff(t *testing.T) {
	svc := newJWT(time.Minute)
	staff := staffUser(entity.RoleSalesRep)
	resolver := new(mockResolver)
	resolver.On("IsTokenValid", mock.Anything, staff.ID, mock.AnythingOfType("string"), jwt.AccessToken).Return(true, nil)
	resolver.On("ResolveUser", mock.Anything, staff.ID).Return(staff, nil)
	h := newRateLimit(service.NewMemoryRateLimiter(), rateLimitConfig(), svc, resolver).API(okHandler)

	for i := 0; i < 5; i++ {
		req := fromIP("10.0.0.4")
		req.Header.Set("Authorization", bearer(t, svc, staff))
		assert.Equal(t, http.StatusOK, serve(h, req).Code)
	}

	visitor := &entity.User{Email: "visitor@example.com", Role: entity.RoleUser}
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := fromIP("10.0.0.5")
		req.Header.Set("Authorization", bearer(t, svc, visitor))
		codes = append(codes, serve(h, req).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_APIStaffExemptionNeedsLiveToken(t *testing.T) {
	svc := newJWT(time.Minute)
	demoted := staffUser(entity.RoleSupport)

	tests := []struct {
		name  string
		valid bool
		user  *entity.User
	}{
		{"revoked token", false, demoted},
		{"demoted user", true, &entity.User{ID: demoted.ID, Role: entity.RoleUser, IsActive: true}},
		{"deactivated user", true, &entity.User{ID: demoted.ID, Role: entity.RoleSupport, IsActive: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(mockResolver)
			resolver.On("IsTokenValid", mock.Anything, demoted.ID, mock.AnythingOfType("string"), jwt.AccessToken).Return(tt.valid, nil)
			resolver.On("ResolveUser", mock.Anything, demoted.ID).Return(tt.user, nil).Maybe()
			h := newRateLimit(service.NewMemoryRateLimiter(), rateLimitConfig(), svc, resolver).API(okHandler)

			codes := make([]int, 0, 3)
			for i := 0; i < 3; i++ {
				req := fromIP("10.0.0.8")
				req.Header.Set("Authorization", bearer(t, svc, demoted))
				codes = append(codes, serve(h, req).Code)
			}
			assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
		})
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	m := newRateLimit(failingLimiter{}, rateLimitConfig(), newJWT(time.Minute), new(mockResolver))
	rec := serve(m.Form(okHandler), fromIP("10.0.0.6"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_DisabledWhenMaxIsZero(t *testing.T) {
	cfg := rateLimitConfig()
	cfg.FormMax = 0
	m := newRateLimit(service.NewMemoryRateLimiter(), cfg, newJWT(time.Minute), new(mockResolver))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(m.Form(okHandler), fromIP("10.0.0.7")).Code)
	}
}
