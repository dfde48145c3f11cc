// Package reload refreshes the catalog from the data source on a schedule.
package reload

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"bell-lookup/internal/channel"
	"bell-lookup/internal/directory"
	"bell-lookup/internal/infra/logx"
)

// Store receives load results.
type Store interface {
	Replace(list []channel.Channel) error
	Failed() error
}

// Reloader runs directory.Load on a cron schedule and once at start.
type Reloader struct {
	mu    sync.Mutex // one load at a time
	src   directory.Source
	store Store
	spec  string
}

func New(src directory.Source, store Store, spec string) *Reloader {
	return &Reloader{src: src, store: store, spec: spec}
}

// RunOnce performs a single load. On failure the stored list is left as is.
func (r *Reloader) RunOnce(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := directory.Load(ctx, r.src)
	if err != nil {
		if ferr := r.store.Failed(); ferr != nil {
			logx.Errorf("reload: mark failed: %v", ferr)
		}
		return err
	}
	return r.store.Replace(list)
}

// Run loads once, then on every tick of the schedule until ctx is done.
func (r *Reloader) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(r.spec, func() {
		if err := r.RunOnce(ctx); err != nil {
			logx.Warnf("scheduled reload failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("reload: bad schedule %q: %w", r.spec, err)
	}

	if err := r.RunOnce(ctx); err != nil {
		logx.Warnf("initial load failed: %v", err)
	}
	c.Start()
	logx.Infof("reload scheduled %q", r.spec)

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
