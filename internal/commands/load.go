package commands

import (
	"context"
	"time"

	"bell-lookup/internal/config"
	"bell-lookup/internal/directory"
	"bell-lookup/internal/infra/logx"
	"bell-lookup/internal/source"
)

const loadTimeout = 30 * time.Second

// loadConfig reads the rc file, registers its secrets and validates it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(ro.configPath)
	if err != nil {
		return cfg, err
	}
	logx.RegisterSecrets(cfg.Secrets())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func openSource() (config.Config, source.Source, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	src, err := source.Open(cfg)
	if err != nil {
		return cfg, nil, err
	}
	logx.Debugf("using %s source, table %q", src.Name(), cfg.Table)
	return cfg, src, nil
}

// fetchState performs one load and applies it to a fresh view state. A
// failed fetch yields the empty, non-loading state.
func fetchState(ctx context.Context) (directory.State, error) {
	_, src, err := openSource()
	if err != nil {
		return directory.State{}, err
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	list, err := directory.Load(ctx, src)
	return directory.Apply(directory.New(), list, err), nil
}
