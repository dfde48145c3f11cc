package supabase

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// outcome classifies one attempt.
type outcome int

const (
	outcomeDone outcome = iota
	outcomeNetErr
	outcomeThrottled // 429
	outcomeUnavailable
)

// Transport is an http.RoundTripper that rate-limits requests and retries
// throttled, unavailable or timed-out attempts up to Opts.RetryMax times.
type Transport struct {
	Base http.RoundTripper
	Opts TransportOptions

	once   sync.Once
	bucket *bucket
}

func NewTransport(base http.RoundTripper, opts TransportOptions) *Transport {
	return &Transport{Base: base, Opts: opts}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.once.Do(func() { t.bucket = newBucket(t.Opts.Limit, t.clock()) })
	m := t.Opts.Metrics
	if m != nil {
		m.IncRequest(req.URL.Host)
	}
	counters := getRetryCounters(req.Context())
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	for attempt := 0; ; attempt++ {
		if err := t.bucket.Wait(req.Context()); err != nil {
			return nil, err
		}
		resp, err := base.RoundTrip(req)
		if err == nil && m != nil {
			m.IncStatus(resp.StatusCode)
		}

		o := classify(resp, err)
		if o == outcomeDone || attempt >= t.Opts.RetryMax {
			return resp, err
		}

		var retryAfter time.Duration
		if resp != nil {
			retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), t.clock().Now())
			resp.Body.Close()
		}
		counters.record(o)
		d := t.backoff(attempt, retryAfter)
		if m != nil {
			m.IncRetry()
			m.AddBackoff(d)
		}
		if err := sleepCtx(req.Context(), t.clock(), d); err != nil {
			return nil, err
		}
	}
}

func classify(resp *http.Response, err error) outcome {
	if err != nil {
		if isTransientNetErr(err) {
			return outcomeNetErr
		}
		return outcomeDone
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return outcomeThrottled
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return outcomeUnavailable
	}
	return outcomeDone
}

// backoff is retryAfter when the server sent one, otherwise base*2^attempt
// plus jitter. Both are capped at BackoffCap.
func (t *Transport) backoff(attempt int, retryAfter time.Duration) time.Duration {
	limit := t.Opts.BackoffCap
	if limit <= 0 {
		limit = defaultBackoffCap
	}
	if retryAfter > 0 {
		return min(retryAfter, limit)
	}
	base := t.Opts.BackoffBase
	if base <= 0 {
		base = defaultBackoffBase
	}
	d := min(base<<attempt, limit)
	if t.Opts.JitterFn != nil {
		d += t.Opts.JitterFn(d, attempt)
	}
	return min(d, limit)
}

func (t *Transport) clock() Clock {
	if t.Opts.Clock != nil {
		return t.Opts.Clock
	}
	return realClock{}
}

func isTransientNetErr(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "connection reset")
}

// parseRetryAfter accepts delay-seconds or an HTTP date.
func parseRetryAfter(h string, now time.Time) time.Duration {
	h = strings.TrimSpace(h)
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(h); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if when, err := http.ParseTime(h); err == nil && when.After(now) {
		return when.Sub(now)
	}
	return 0
}
