package supabase

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

// Limit caps outgoing requests per second with a burst allowance.
type Limit struct {
	RPS   float64
	Burst int
}

// TransportOptions configures Transport. Zero values fall back to defaults,
// except RetryMax: zero means a single attempt.
type TransportOptions struct {
	RetryMax    int
	BackoffBase time.Duration
	BackoffCap  time.Duration
	JitterFn    func(base time.Duration, attempt int) time.Duration
	Clock       Clock
	Metrics     *Metrics
	Limit       Limit
}

const (
	defaultRPS         = 10
	defaultBackoffBase = 250 * time.Millisecond
	defaultBackoffCap  = 5 * time.Second
)

// DefaultTransportOptionsFromEnv reads SUPABASE_RPS, SUPABASE_BURST,
// SUPABASE_RETRY_MAX, SUPABASE_RETRY_BASE_MS and SUPABASE_RETRY_CAP_MS.
// Retries stay off unless SUPABASE_RETRY_MAX is set.
func DefaultTransportOptionsFromEnv() TransportOptions {
	opts := TransportOptions{
		BackoffBase: defaultBackoffBase,
		BackoffCap:  defaultBackoffCap,
		Clock:       realClock{},
		JitterFn:    randomJitter,
		Metrics:     NewMetrics(),
		Limit:       Limit{RPS: defaultRPS, Burst: defaultRPS},
	}
	if v, err := strconv.ParseFloat(env("SUPABASE_RPS"), 64); err == nil && v > 0 {
		opts.Limit.RPS = v
	}
	if n, err := strconv.Atoi(env("SUPABASE_BURST")); err == nil && n > 0 {
		opts.Limit.Burst = n
	}
	if n, err := strconv.Atoi(env("SUPABASE_RETRY_MAX")); err == nil && n >= 0 {
		opts.RetryMax = n
	}
	if d, ok := envMillis("SUPABASE_RETRY_BASE_MS"); ok {
		opts.BackoffBase = d
	}
	if d, ok := envMillis("SUPABASE_RETRY_CAP_MS"); ok && d > 0 {
		opts.BackoffCap = d
	}
	return opts
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }

func envMillis(key string) (time.Duration, bool) {
	n, err := strconv.Atoi(env(key))
	if err != nil || n < 0 {
		return 0, false
	}
	return time.Duration(n) * time.Millisecond, true
}

// randomJitter returns a uniform delay in [0, base).
func randomJitter(base time.Duration, _ int) time.Duration {
	if base <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(base)))
}
