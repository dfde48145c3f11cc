package supabase

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

const waitStep = 5 * time.Millisecond

// bucket is a token bucket holding fractional tokens.
type bucket struct {
	mu     sync.Mutex
	clock  Clock
	rate   float64 // tokens per second
	size   float64
	tokens float64
	at     time.Time
}

func newBucket(lim Limit, clock Clock) *bucket {
	rate := lim.RPS
	if rate <= 0 {
		rate = defaultRPS
	}
	size := float64(max(1, lim.Burst))
	return &bucket{clock: clock, rate: rate, size: size, tokens: size, at: clock.Now()}
}

// take removes one token if available, otherwise reports how long until one is.
func (b *bucket) take() (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.clock.Now()
	if elapsed := now.Sub(b.at).Seconds(); elapsed > 0 {
		b.tokens = min(b.size, b.tokens+elapsed*b.rate)
		b.at = now
	}
	if b.tokens >= 1 {
		b.tokens--
		return 0, true
	}
	return time.Duration((1 - b.tokens) / b.rate * float64(time.Second)), false
}

// Wait blocks until a token is available or ctx is done.
func (b *bucket) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		wait, ok := b.take()
		if ok {
			return nil
		}
		until := b.clock.Now().Add(max(wait, waitStep))
		for b.clock.Now().Before(until) {
			if err := ctx.Err(); err != nil {
				return err
			}
			b.clock.Sleep(waitStep)
		}
	}
}

// sleepCtx sleeps for d in waitStep slices and stops early once ctx is done.
func sleepCtx(ctx context.Context, clock Clock, d time.Duration) error {
	for d > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := min(d, waitStep)
		clock.Sleep(step)
		d -= step
	}
	return ctx.Err()
}
