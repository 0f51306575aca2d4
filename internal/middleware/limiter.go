package middleware

import (
	"net/http"
	"sync"
	"time"

	"pedidos-be/internal/auth"
	"pedidos-be/internal/logger"
	"pedidos-be/internal/metrics"
	"pedidos-be/internal/transport"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Login and registration (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// Frontend-heavy apps
	limitFrontend = rate.Limit(20)
	burstFrontend = 40
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per caller and tier. The general tier is
// configured; the strict and frontend tiers are fixed.
type Limiter struct {
	general rate.Limit
	burst   int

	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewLimiter(rps float64, burst int) *Limiter {
	l := &Limiter{
		general:  rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*visitor),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Stop ends the background cleanup.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := l.resolveTier(r)
		key := identityKey(r) + ":" + tier

		if !l.get(key, limit, burst).Allow() {
			metrics.RateLimited.Inc()
			logger.FromCtx(r.Context()).Warn("rate limit exceeded",
				zap.String("key", key),
			)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) get(key string, limit rate.Limit, burst int) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(limit, burst)}
		l.visitors[key] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

// sweep drops visitors idle for longer than visitorTTL.
func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}
}

// resolveTier determines which rate limit policy applies to the request.
func (l *Limiter) resolveTier(r *http.Request) (rate.Limit, int, string) {
	if r.Header.Get("X-Action") == "auth" {
		return limitStrict, burstStrict, "strict"
	}
	if r.Header.Get("X-Client-Type") == "frontend-heavy" {
		return limitFrontend, burstFrontend, "frontend"
	}
	return l.general, l.burst, "general"
}

// identityKey prefers the authenticated seller, then a client supplied
// device id, then the caller's IP.
func identityKey(r *http.Request) string {
	if id, ok := auth.IdentityFrom(r.Context()); ok {
		return "user:" + id.ID
	}
	if deviceID := r.Header.Get("X-Device-ID"); deviceID != "" {
		return "device:" + deviceID
	}
	return "ip:" + transport.ClientIP(r)
}
