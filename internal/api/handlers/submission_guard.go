package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
)

// SubmissionGuard limits how often one client may submit a form and
// suppresses repeated identical submissions. State lives in the cache when
// one is configured; the in-process limiter takes over when it is nil or
// failing.
type SubmissionGuard struct {
	cache       providers.CacheProvider
	limit       int
	window      time.Duration
	dedupWindow time.Duration
	local       *localRateLimiter
	deduper     *localDeduper
}

// NewSubmissionGuard creates a guard allowing limit submissions per window.
func NewSubmissionGuard(cache providers.CacheProvider, limit int, window, dedupWindow time.Duration) *SubmissionGuard {
	return &SubmissionGuard{
		cache:       cache,
		limit:       limit,
		window:      window,
		dedupWindow: dedupWindow,
		local:       newLocalRateLimiter(),
		deduper:     newLocalDeduper(),
	}
}

// Allow counts one submission for key and reports whether it is within the
// limit, with the time to wait otherwise.
func (g *SubmissionGuard) Allow(ctx context.Context, key string) (bool, time.Duration) {
	if g.cache == nil {
		return g.local.allow(key, g.limit, g.window)
	}

	count, err := g.cache.Increment(ctx, "ratelimit:"+key, g.window)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Rate limit cache unavailable, using local limiter")
		return g.local.allow(key, g.limit, g.window)
	}
	if count > int64(g.limit) {
		return false, g.window
	}
	return true, 0
}

// Seen reports whether fingerprint was remembered within the dedup window.
func (g *SubmissionGuard) Seen(ctx context.Context, fingerprint string) bool {
	if g.cache == nil {
		return g.deduper.contains(fingerprint)
	}

	exists, err := g.cache.Exists(ctx, "dedup:"+fingerprint)
	if err != nil {
		return g.deduper.contains(fingerprint)
	}
	return exists
}

// Remember records an accepted submission so identical ones are ignored.
func (g *SubmissionGuard) Remember(ctx context.Context, fingerprint string) {
	if g.cache != nil {
		if err := g.cache.Set(ctx, "dedup:"+fingerprint, []byte("1"), g.dedupWindow); err == nil {
			return
		}
	}
	g.deduper.remember(fingerprint, g.dedupWindow)
}

// Sweep drops expired entries from the in-process fallback state.
func (g *SubmissionGuard) Sweep() {
	now := time.Now()
	g.local.sweep(now)
	g.deduper.sweep(now)
}

// StartSweeper runs Sweep every interval until ctx is done.
func (g *SubmissionGuard) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				g.Sweep()
			}
		}
	}()
}

type localRateLimiter struct {
	mu     sync.Mutex
	states map[string]*localRateState
}

type localRateState struct {
	count   int
	resetAt time.Time
}

func newLocalRateLimiter() *localRateLimiter {
	return &localRateLimiter{
		states: make(map[string]*localRateState),
	}
}

func (l *localRateLimiter) allow(key string, limit int, window time.Duration) (bool, time.Duration) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[key]
	if !ok || now.After(state.resetAt) {
		state = &localRateState{count: 0, resetAt: now.Add(window)}
		l.states[key] = state
	}

	if state.count >= limit {
		retryAfter := time.Until(state.resetAt)
		if retryAfter < 0 {
			retryAfter = window
		}
		return false, retryAfter
	}

	state.count++
	return true, 0
}

func (l *localRateLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, state := range l.states {
		if now.After(state.resetAt) {
			delete(l.states, key)
		}
	}
}

type localDeduper struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newLocalDeduper() *localDeduper {
	return &localDeduper{
		entries: make(map[string]time.Time),
	}
}

func (d *localDeduper) contains(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	expiresAt, ok := d.entries[key]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(d.entries, key)
		return false
	}
	return true
}

func (d *localDeduper) remember(key string, window time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = time.Now().Add(window)
}

func (d *localDeduper) sweep(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, expiresAt := range d.entries {
		if now.After(expiresAt) {
			delete(d.entries, key)
		}
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// fingerprint hashes the normalized parts of a submission.
func fingerprint(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = normalizeText(p)
	}
	hash := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(hash[:])
}

func normalizeText(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}
	return strings.Join(strings.Fields(trimmed), " ")
}
