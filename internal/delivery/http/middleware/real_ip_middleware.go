package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/samber/lo"
)

const ClientIPKey contextKey = "client_ip"

// RealIPMiddleware resolves the caller's address once per request. Forwarding
// headers are read only when the peer is one of the trusted proxies, so a
// direct caller cannot pick its own rate limit key.
type RealIPMiddleware struct {
	trusted []netip.Prefix
}

// NewRealIPMiddleware accepts bare IPs and CIDRs.
func NewRealIPMiddleware(proxies []string) (*RealIPMiddleware, error) {
	trusted := make([]netip.Prefix, 0, len(proxies))
	for _, raw := range proxies {
		raw = strings.TrimSpace(raw)
		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
			}
			trusted = append(trusted, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		trusted = append(trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return &RealIPMiddleware{trusted: trusted}, nil
}

func (m *RealIPMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientIPKey, m.resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve walks X-Forwarded-For from the nearest hop and returns the first
// address that is not a trusted proxy.
func (m *RealIPMiddleware) resolve(r *http.Request) string {
	peer := remoteHost(r)
	if !m.isTrusted(peer) {
		return peer
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := lo.FilterMap(strings.Split(fwd, ","), func(h string, _ int) (string, bool) {
			h = strings.TrimSpace(h)
			return h, h != ""
		})
		for i := len(hops) - 1; i >= 0; i-- {
			if _, err := netip.ParseAddr(hops[i]); err != nil {
				break
			}
			if !m.isTrusted(hops[i]) || i == 0 {
				return hops[i]
			}
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		if _, err := netip.ParseAddr(ip); err == nil {
			return ip
		}
	}
	return peer
}

func (m *RealIPMiddleware) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return lo.ContainsBy(m.trusted, func(p netip.Prefix) bool {
		return p.Contains(addr)
	})
}

// ClientIP returns the address resolved by RealIPMiddleware, or the peer
// address when the request did not pass through it.
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(ClientIPKey).(string); ok && ip != "" {
		return ip
	}
	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
