// Package source reads raw channel rows from the configured backend.
package source

import (
	"context"
	"fmt"

	"bell-lookup/internal/channel"
	"bell-lookup/internal/config"
	"bell-lookup/internal/supabase"
)

// Source is a read-only backend for the channel table.
type Source interface {
	FetchChannels(ctx context.Context) ([]channel.Record, error)
	Name() string
	Close() error
}

// Open picks the backend named by cfg.Source.
func Open(cfg config.Config) (Source, error) {
	switch cfg.Source {
	case config.SourceREST, "":
		opts := supabase.DefaultTransportOptionsFromEnv()
		return NewREST(supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, opts), cfg.Table), nil
	case config.SourcePostgres:
		return OpenPostgres(cfg.DatabaseURL, cfg.Table)
	case config.SourceSQLite:
		return OpenSQLite(cfg.SQLitePath, cfg.Table)
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}
