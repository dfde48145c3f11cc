package supabase

import "context"

type retryCtxKey struct{}

// RetryCounters attributes the retries of one fetch by cause.
type RetryCounters struct {
	Total     int64
	Status429 int64
	Status5xx int64
	Net       int64
}

// WithRetryCounters attaches rc to ctx; Transport updates it on every retry.
func WithRetryCounters(ctx context.Context, rc *RetryCounters) context.Context {
	return context.WithValue(ctx, retryCtxKey{}, rc)
}

func getRetryCounters(ctx context.Context) *RetryCounters {
	rc, _ := ctx.Value(retryCtxKey{}).(*RetryCounters)
	return rc
}

func (rc *RetryCounters) record(o outcome) {
	if rc == nil {
		return
	}
	rc.Total++
	switch o {
	case outcomeThrottled:
		rc.Status429++
	case outcomeUnavailable:
		rc.Status5xx++
	case outcomeNetErr:
		rc.Net++
	}
}
