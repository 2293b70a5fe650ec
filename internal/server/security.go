package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/metrics"
)

// AuthMiddleware guards every non-public route with the configured key.
// The key may arrive as X-API-Key or as a bearer token. An empty apiKey
// disables the check for single-user local installs.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	proxies := newProxySet(trustedProxies)
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			provided := credentialFrom(r)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := proxies.clientIP(r)
			detector.RecordFailedAuth(ip)
			metrics.AuthFailures.Inc()

			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", provided != "",
				"ip", ip)

			w.Header().Set(HeaderWWWAuthenticate, bearerScheme)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// credentialFrom prefers X-API-Key and falls back to a bearer token
func credentialFrom(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}
	auth := r.Header.Get(HeaderAuthorization)
	if len(auth) > len(bearerScheme) && strings.EqualFold(auth[:len(bearerScheme)], bearerScheme) && auth[len(bearerScheme)] == ' ' {
		return strings.TrimSpace(auth[len(bearerScheme)+1:])
	}
	return ""
}

// RequestSizeLimitMiddleware caps the request body
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientWindow is one client's activity inside its current window
type clientWindow struct {
	opened     time.Time
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector counts requests and failed logins per client
// over fixed windows. Each client's window opens on its first request.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
	now     func() time.Time
}

// DetectorOption customises a SuspiciousActivityDetector
type DetectorOption func(*SuspiciousActivityDetector)

// WithRateLimit overrides the request budget per window
func WithRateLimit(limit int, window time.Duration) DetectorOption {
	return func(d *SuspiciousActivityDetector) {
		d.limit = limit
		d.window = window
	}
}

// WithClock swaps the time source, for tests
func WithClock(now func() time.Time) DetectorOption {
	return func(d *SuspiciousActivityDetector) {
		d.now = now
	}
}

func NewSuspiciousActivityDetector(opts ...DetectorOption) *SuspiciousActivityDetector {
	d := &SuspiciousActivityDetector{
		clients: make(map[string]*clientWindow),
		limit:   requestRateLimit,
		window:  rateWindow,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// windowFor returns the live window for ip, opening a fresh one when the
// previous has expired. Caller must hold the mutex.
func (d *SuspiciousActivityDetector) windowFor(ip string, now time.Time) *clientWindow {
	cw, ok := d.clients[ip]
	if ok && now.Sub(cw.opened) < d.window {
		return cw
	}
	if !ok && len(d.clients) >= maxTrackedClients {
		d.pruneLocked(now)
	}
	cw = &clientWindow{opened: now}
	d.clients[ip] = cw
	return cw
}

func (d *SuspiciousActivityDetector) pruneLocked(now time.Time) {
	for ip, cw := range d.clients {
		if now.Sub(cw.opened) >= d.window {
			delete(d.clients, ip)
		}
	}
}

// RecordFailedAuth counts a rejected credential and returns the running total
func (d *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	cw := d.windowFor(ip, d.now())
	cw.failedAuth++
	if cw.failedAuth == failedAuthAlertThreshold || (cw.failedAuth > failedAuthAlertThreshold && cw.failedAuth%failedAuthAlertThreshold == 0) {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", cw.failedAuth)
	}
	return cw.failedAuth
}

// RecordRequest counts a request. When the client is over budget it returns
// false and how long until its window reopens.
func (d *SuspiciousActivityDetector) RecordRequest(ip string) (bool, time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	cw := d.windowFor(ip, now)
	cw.requests++
	if cw.requests <= d.limit {
		return true, 0
	}

	over := cw.requests - d.limit
	if over == 1 || over%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", cw.requests, "window", d.window)
	}
	return false, cw.opened.Add(d.window).Sub(now)
}

// Tracked reports how many clients currently hold a window
func (d *SuspiciousActivityDetector) Tracked() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.clients)
}

// SecurityLoggingMiddleware enforces the per-client request budget
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	proxies := newProxySet(trustedProxies)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter := detector.RecordRequest(proxies.clientIP(r))
			if !ok {
				metrics.RateLimited.Inc()
				secs := int(retryAfter.Round(time.Second) / time.Second)
				if secs < 1 {
					secs = 1
				}
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(secs))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// proxySet holds the peers allowed to report X-Forwarded-For
type proxySet map[string]struct{}

func newProxySet(addrs []string) proxySet {
	set := make(proxySet, len(addrs))
	for _, a := range addrs {
		if ip := net.ParseIP(strings.TrimSpace(a)); ip != nil {
			set[ip.String()] = struct{}{}
		}
	}
	return set
}

// clientIP resolves the caller's address. X-Forwarded-For is honoured only
// from a trusted peer, and only its last hop, which that peer appended.
func (p proxySet) clientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if parsed := net.ParseIP(remote); parsed != nil {
		remote = parsed.String()
	}
	if _, trusted := p[remote]; !trusted {
		return remote
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	if hop := net.ParseIP(strings.TrimSpace(hops[len(hops)-1])); hop != nil {
		return hop.String()
	}
	return remote
}

// SecurityHeadersMiddleware sets hardening headers. API responses carry
// per-user state and are never cached.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			h.Set(HeaderContentSecurity, HeaderValueCSPNone)
			if strings.HasPrefix(r.URL.Path, apiPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}
			next.ServeHTTP(w, r)
		})
	}
}
