package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Source kinds.
const (
	SourceREST     = "rest"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

const (
	defaultTable  = "channels"
	defaultAddr   = ":8080"
	defaultReload = "@every 15m"
	rcName        = ".belltvrc"
)

// Keys as they appear in the rc file and the environment.
const (
	keySource      = "BELLTV_SOURCE"
	keySupabaseURL = "SUPABASE_URL"
	keySupabaseKey = "SUPABASE_ANON_KEY"
	keyTable       = "BELLTV_TABLE"
	keyDatabaseURL = "DATABASE_URL"
	keySQLitePath  = "BELLTV_SQLITE_PATH"
	keyAddr        = "BELLTV_ADDR"
	keyReload      = "BELLTV_RELOAD"
)

// Config holds the backend connection and serve settings.
type Config struct {
	Path string // file the config was read from

	Source      string
	SupabaseURL string
	SupabaseKey string
	Table       string
	DatabaseURL string
	SQLitePath  string

	Addr   string
	Reload string
}

// DefaultPath returns ~/.belltvrc.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return rcName
	}
	return filepath.Join(home, rcName)
}

// Load reads KEY=VALUE lines from path. A missing file is not an error.
// Environment variables override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{Path: path}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetDefault(keySource, SourceREST)
	v.SetDefault(keyTable, defaultTable)
	v.SetDefault(keyReload, defaultReload)

	cfg := Config{
		Path:        path,
		Source:      strings.ToLower(strings.TrimSpace(v.GetString(keySource))),
		SupabaseURL: strings.TrimRight(strings.TrimSpace(v.GetString(keySupabaseURL)), "/"),
		SupabaseKey: strings.TrimSpace(v.GetString(keySupabaseKey)),
		Table:       strings.TrimSpace(v.GetString(keyTable)),
		DatabaseURL: strings.TrimSpace(v.GetString(keyDatabaseURL)),
		SQLitePath:  strings.TrimSpace(v.GetString(keySQLitePath)),
		Addr:        strings.TrimSpace(v.GetString(keyAddr)),
		Reload:      strings.TrimSpace(v.GetString(keyReload)),
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			cfg.Addr = ":" + port
		}
	}
	if cfg.SQLitePath != "" {
		if p, err := homedir.Expand(cfg.SQLitePath); err == nil {
			cfg.SQLitePath = p
		}
	}
	return cfg, nil
}

// Validate checks that the selected source has what it needs to connect.
func (c Config) Validate() error {
	switch c.Source {
	case SourceREST:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return errors.New("rest source needs SUPABASE_URL and SUPABASE_ANON_KEY")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("postgres source needs DATABASE_URL")
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite source needs BELLTV_SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	if c.Table == "" {
		return errors.New("table name empty")
	}
	return nil
}

// Secrets returns the values that must never appear in logs.
func (c Config) Secrets() []string {
	return []string{c.SupabaseKey, c.DatabaseURL}
}

// Save writes cfg to path as KEY=VALUE lines, skipping empty values.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pairs := []struct{ key, val string }{
		{keySource, cfg.Source},
		{keySupabaseURL, cfg.SupabaseURL},
		{keySupabaseKey, cfg.SupabaseKey},
		{keyTable, cfg.Table},
		{keyDatabaseURL, cfg.DatabaseURL},
		{keySQLitePath, cfg.SQLitePath},
		{keyAddr, cfg.Addr},
		{keyReload, cfg.Reload},
	}
	var b strings.Builder
	for _, p := range pairs {
		if p.val == "" {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", p.key, p.val)
	}
	return os.WriteFile(path, []byte(b.String()), 0o600)
}
