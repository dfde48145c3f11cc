package directory

import (
	"context"
	"time"

	"bell-lookup/internal/channel"
	"bell-lookup/internal/infra/logx"
	"bell-lookup/internal/supabase"
)

// Source reads raw channel rows, ordered by index ascending.
type Source interface {
	FetchChannels(ctx context.Context) ([]channel.Record, error)
}

// Load reads and normalizes the whole channel table. Failures are logged
// here; callers decide what the view keeps. Both log lines carry the
// retries the REST transport made for this fetch.
func Load(ctx context.Context, src Source) ([]channel.Channel, error) {
	start := time.Now()
	rc := &supabase.RetryCounters{}
	recs, err := src.FetchChannels(supabase.WithRetryCounters(ctx, rc))
	if err != nil {
		logx.Log(logx.LevelError, "channel load failed", withRetries(map[string]any{
			"error":   err.Error(),
			"elapsed": time.Since(start).String(),
		}, rc))
		return nil, err
	}
	list := channel.NormalizeAll(recs)
	logx.Log(logx.LevelInfo, "channels loaded", withRetries(map[string]any{
		"count":   len(list),
		"elapsed": time.Since(start).String(),
	}, rc))
	return list, nil
}

func withRetries(fields map[string]any, rc *supabase.RetryCounters) map[string]any {
	fields["retries"] = rc.Total
	fields["status429"] = rc.Status429
	fields["status5xx"] = rc.Status5xx
	fields["net"] = rc.Net
	return fields
}

// Apply folds a load result into s: the list is replaced on success and kept
// on failure. Loading is cleared either way.
func Apply(s State, list []channel.Channel, err error) State {
	if err != nil {
		return s.Failed()
	}
	return s.Loaded(list)
}
