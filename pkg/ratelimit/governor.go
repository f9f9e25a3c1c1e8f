// Package ratelimit enforces each plugin's per-minute provider call budget
// across all concurrent workers. One token buys one provider call.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
)

// ErrUnknownPlugin indicates the governor has no bucket for the plugin
var ErrUnknownPlugin = errors.New("unknown plugin")

// Governor holds one token bucket per plugin. Buckets refill continuously at
// rate_limit_per_minute/60 tokens per second up to their capacity; a penalty
// freezes refill for its duration. Within one plugin, acquisition is FIFO;
// across plugins, buckets are independent.
type Governor struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	now     func() time.Time
	logger  *slog.Logger
}

// Option tweaks governor construction.
type Option func(*Governor)

// WithClock injects the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Governor) { g.now = now }
}

// NewGovernor builds buckets for the given per-minute limits.
func NewGovernor(limits map[string]int, opts ...Option) *Governor {
	g := &Governor{
		buckets: make(map[string]*bucket, len(limits)),
		now:     time.Now,
		logger:  slog.With("component", "rate_governor"),
	}
	for _, opt := range opts {
		opt(g)
	}
	for name, limit := range limits {
		g.buckets[name] = newBucket(limit, g.now)
	}
	return g
}

// Acquire blocks until one token is available for the plugin, or until ctx
// is cancelled. Callers must acquire before every provider request.
func (g *Governor) Acquire(ctx context.Context, plugin string) error {
	b, err := g.bucket(plugin)
	if err != nil {
		return err
	}

	w := &waiter{ready: make(chan struct{})}

	b.mu.Lock()
	b.refillLocked(g.now())
	if len(b.waiters) == 0 && b.tokens >= 1 {
		b.tokens--
		b.mu.Unlock()
		return nil
	}
	b.waiters = append(b.waiters, w)
	b.scheduleLocked(g.now())
	b.mu.Unlock()

	select {
	case <-w.ready:
		return nil
	case <-ctx.Done():
		if b.abandon(w) {
			return ctx.Err()
		}
		// Token was granted concurrently with cancellation; hand it back.
		b.release(g.now())
		return ctx.Err()
	}
}

// Penalty freezes the plugin's refill for d from now. Extractors call this
// when the provider answers with an explicit backoff.
func (g *Governor) Penalty(plugin string, d time.Duration) error {
	b, err := g.bucket(plugin)
	if err != nil {
		return err
	}
	now := g.now()

	b.mu.Lock()
	b.refillLocked(now)
	until := now.Add(d)
	if until.After(b.penaltyUntil) {
		b.penaltyUntil = until
	}
	b.rescheduleLocked(now)
	b.mu.Unlock()

	g.logger.Warn("Refill penalty applied", "plugin", plugin, "duration", d)
	return nil
}

// Tokens reports the currently available tokens. Diagnostic only.
func (g *Governor) Tokens(plugin string) (float64, error) {
	b, err := g.bucket(plugin)
	if err != nil {
		return 0, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refillLocked(g.now())
	return b.tokens, nil
}

func (g *Governor) bucket(plugin string) (*bucket, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	b, ok := g.buckets[plugin]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlugin, plugin)
	}
	return b, nil
}

type waiter struct {
	ready chan struct{}
}

type bucket struct {
	mu           sync.Mutex
	now          func() time.Time
	capacity     float64
	refillPerSec float64
	tokens       float64
	lastRefill   time.Time
	penaltyUntil time.Time
	waiters      []*waiter
	timer        *time.Timer
	timerSet     bool
}

func newBucket(limitPerMinute int, now func() time.Time) *bucket {
	perSec := float64(limitPerMinute) / 60.0
	capacity := math.Max(1, perSec)
	return &bucket{
		now:          now,
		capacity:     capacity,
		refillPerSec: perSec,
		tokens:       capacity,
		lastRefill:   now(),
	}
}

// refillLocked accrues tokens up to now. Refill is suspended while a penalty
// window is open.
func (b *bucket) refillLocked(now time.Time) {
	if !now.After(b.lastRefill) {
		return
	}
	start := b.lastRefill
	if b.penaltyUntil.After(start) {
		if b.penaltyUntil.After(now) {
			b.lastRefill = now
			return
		}
		start = b.penaltyUntil
	}
	elapsed := now.Sub(start).Seconds()
	b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.refillPerSec)
	b.lastRefill = now
}

// grantLocked hands tokens to queued waiters in FIFO order.
func (b *bucket) grantLocked() {
	for len(b.waiters) > 0 && b.tokens >= 1 {
		b.tokens--
		head := b.waiters[0]
		b.waiters = b.waiters[1:]
		close(head.ready)
	}
}

// scheduleLocked arms the wake-up timer for the head waiter if none is
// pending.
func (b *bucket) scheduleLocked(now time.Time) {
	b.grantLocked()
	if len(b.waiters) == 0 || b.timerSet {
		return
	}
	b.timerSet = true
	b.timer = time.AfterFunc(b.nextTokenInLocked(now), b.onTimer)
}

// rescheduleLocked re-arms the timer after penalty changes pushed the next
// token out.
func (b *bucket) rescheduleLocked(now time.Time) {
	if b.timerSet {
		b.timer.Stop()
		b.timerSet = false
	}
	b.scheduleLocked(now)
}

func (b *bucket) nextTokenInLocked(now time.Time) time.Duration {
	wait := time.Duration(0)
	start := now
	if b.penaltyUntil.After(start) {
		wait = b.penaltyUntil.Sub(now)
		start = b.penaltyUntil
	}
	if b.tokens >= 1 {
		return wait
	}
	need := 1 - b.tokens
	return wait + time.Duration(need/b.refillPerSec*float64(time.Second))
}

func (b *bucket) onTimer() {
	now := b.now()
	b.mu.Lock()
	b.timerSet = false
	b.refillLocked(now)
	b.grantLocked()
	if len(b.waiters) > 0 {
		b.scheduleLocked(now)
	}
	b.mu.Unlock()
}

// abandon removes a cancelled waiter. Returns false when the waiter was
// already granted.
func (b *bucket) abandon(w *waiter) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, queued := range b.waiters {
		if queued == w {
			b.waiters = append(b.waiters[:i], b.waiters[i+1:]...)
			return true
		}
	}
	return false
}

// release returns an unused token and lets the next waiter have it.
func (b *bucket) release(now time.Time) {
	b.mu.Lock()
	b.refillLocked(now)
	b.tokens = math.Min(b.capacity, b.tokens+1)
	b.grantLocked()
	b.mu.Unlock()
}
