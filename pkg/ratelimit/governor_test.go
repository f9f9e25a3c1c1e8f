package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func drain(t *testing.T, g *Governor, plugin string, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		require.NoError(t, g.Acquire(ctx, plugin))
	}
}

func TestAcquireFromFullBucket(t *testing.T) {
	g := NewGovernor(map[string]int{"daily_bar": 6000})

	start := time.Now()
	drain(t, g, "daily_bar", 50)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "full bucket should grant without blocking")
}

func TestCapacityFloorsAtOneToken(t *testing.T) {
	clock := newFakeClock()
	g := NewGovernor(map[string]int{"stock_basic": 30}, WithClock(clock.Now))

	tokens, err := g.Tokens("stock_basic")
	require.NoError(t, err)
	assert.Equal(t, 1.0, tokens, "limits under 60/min still start with one token")
}

func TestRefillRate(t *testing.T) {
	clock := newFakeClock()
	g := NewGovernor(map[string]int{"daily_bar": 120}, WithClock(clock.Now))

	drain(t, g, "daily_bar", 2)

	tokens, err := g.Tokens("daily_bar")
	require.NoError(t, err)
	assert.Equal(t, 0.0, tokens)

	// 120/min refills at 2 tokens per second.
	clock.Advance(500 * time.Millisecond)
	tokens, err = g.Tokens("daily_bar")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tokens, 1e-9)

	// Refill caps at capacity.
	clock.Advance(time.Hour)
	tokens, err = g.Tokens("daily_bar")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, tokens, 1e-9)
}

func TestPenaltyFreezesRefill(t *testing.T) {
	clock := newFakeClock()
	g := NewGovernor(map[string]int{"daily_bar": 6000}, WithClock(clock.Now))

	drain(t, g, "daily_bar", 100)
	require.NoError(t, g.Penalty("daily_bar", 30*time.Second))

	clock.Advance(10 * time.Second)
	tokens, err := g.Tokens("daily_bar")
	require.NoError(t, err)
	assert.Equal(t, 0.0, tokens, "no refill inside the penalty window")

	clock.Advance(26 * time.Second)
	tokens, err = g.Tokens("daily_bar")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, tokens, 1e-6, "refill resumes once the penalty expires")
}

func TestPenaltyExtendsNotShortens(t *testing.T) {
	clock := newFakeClock()
	g := NewGovernor(map[string]int{"daily_bar": 6000}, WithClock(clock.Now))

	drain(t, g, "daily_bar", 100)
	require.NoError(t, g.Penalty("daily_bar", 30*time.Second))
	require.NoError(t, g.Penalty("daily_bar", time.Second))

	clock.Advance(20 * time.Second)
	tokens, err := g.Tokens("daily_bar")
	require.NoError(t, err)
	assert.Equal(t, 0.0, tokens, "shorter penalty must not cut the earlier window")
}

func TestAcquireFIFOOrder(t *testing.T) {
	// 600/min refills one token every 100ms.
	g := NewGovernor(map[string]int{"daily_bar": 600})
	drain(t, g, "daily_bar", 10)

	var mu sync.Mutex
	var order []int
	errs := make([]error, 3)
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			errs[id] = g.Acquire(context.Background(), "daily_bar")
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
		}(i)
		// Stagger starts so queue order is deterministic.
		time.Sleep(25 * time.Millisecond)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestAcquireContextCancelled(t *testing.T) {
	g := NewGovernor(map[string]int{"stock_basic": 60})
	drain(t, g, "stock_basic", 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := g.Acquire(ctx, "stock_basic")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestBucketsAreIndependent(t *testing.T) {
	g := NewGovernor(map[string]int{"daily_bar": 60, "moneyflow": 6000})
	drain(t, g, "daily_bar", 1)

	start := time.Now()
	drain(t, g, "moneyflow", 20)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "draining one bucket must not block another")
}

func TestUnknownPlugin(t *testing.T) {
	g := NewGovernor(map[string]int{"daily_bar": 60})

	assert.ErrorIs(t, g.Acquire(context.Background(), "nope"), ErrUnknownPlugin)
	assert.ErrorIs(t, g.Penalty("nope", time.Second), ErrUnknownPlugin)
	_, err := g.Tokens("nope")
	assert.ErrorIs(t, err, ErrUnknownPlugin)
}
