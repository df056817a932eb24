package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// RateLimitOptions configures rate limiting behavior
type RateLimitOptions struct {
	Requests       int
	Window         time.Duration
	Message        string
	TrustedProxies []string
}

// getClientIPFromRequest extracts the client IP from the request's RemoteAddr
// Returns the IP portion, falling back to the full RemoteAddr if parsing fails
func getClientIPFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// IPRateLimiter creates an IP-based rate limiter. Limited requests receive
// the wire error shape of the management API with a Retry-After hint.
// Note: Should be used with TrustedRealIP middleware for proper proxy handling
func IPRateLimiter(requests int, window time.Duration, message string) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			// r.RemoteAddr holds the real IP if TrustedRealIP ran before us
			return getClientIPFromRequest(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			awserr.Write(w, awserr.New(http.StatusTooManyRequests, awserr.CodeTooManyRequests, message))
		}),
	)
}

// InstallRateLimiter installs RealIP handling plus the IP-based rate limiter.
func InstallRateLimiter(r chi.Router, opts RateLimitOptions) {
	// Only trust X-Forwarded-For/X-Real-IP when the immediate peer is in one of these CIDRs
	if len(opts.TrustedProxies) > 0 {
		r.Use(TrustedRealIP(opts.TrustedProxies))
	}
	r.Use(IPRateLimiter(opts.Requests, opts.Window, opts.Message))
}

// TrustedRealIP middleware rewrites r.RemoteAddr from proxy headers, but only
// when the immediate peer is in the trustedProxies list. Headers from
// untrusted peers are silently ignored.
func TrustedRealIP(trustedProxies []string) func(http.Handler) http.Handler {
	// Parse trusted proxy CIDRs and literal IPs once, not per request
	trustedNets := parseTrustedProxies(trustedProxies)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if peerIsTrusted(trustedNets, getClientIPFromRequest(r)) {
				if ip := realIPFromHeaders(r.Header); ip != "" {
					r.RemoteAddr = ip
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseTrustedProxies(trustedProxies []string) []*net.IPNet {
	var trustedNets []*net.IPNet
	for _, entry := range trustedProxies {
		s := strings.TrimSpace(entry)
		if s == "" {
			continue
		}
		if strings.Contains(s, "/") {
			if _, n, err := net.ParseCIDR(s); err == nil {
				trustedNets = append(trustedNets, n)
			}
			continue
		}
		if ip := net.ParseIP(s); ip != nil {
			// Treat a literal IP as a single-host network
			if ip.To4() != nil {
				trustedNets = append(trustedNets, &net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)})
			} else {
				trustedNets = append(trustedNets, &net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)})
			}
		}
	}
	return trustedNets
}

func peerIsTrusted(trustedNets []*net.IPNet, host string) bool {
	peerIP := net.ParseIP(host)
	if peerIP == nil {
		return false
	}
	for _, trustedNet := range trustedNets {
		if trustedNet.Contains(peerIP) {
			return true
		}
	}
	return false
}

// realIPFromHeaders returns the first valid client IP from the proxy headers,
// in priority order True-Client-IP, X-Real-IP, X-Forwarded-For.
func realIPFromHeaders(header http.Header) string {
	for _, name := range []string{"True-Client-IP", "X-Real-IP"} {
		if value := strings.TrimSpace(header.Get(name)); value != "" {
			if ip := net.ParseIP(value); ip != nil {
				return ip.String()
			}
		}
	}
	if xff := header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}
	return ""
}
