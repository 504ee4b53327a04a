package otel

import (
	"context"

	"github.com/bravo68web/codecommit/pkg/logger"
)

// NewLogger builds a logger that writes to stderr and exports every entry
// to the collector. The provider is closed with the logger.
func NewLogger(ctx context.Context, cfg *logger.Config, otelCfg *Config) (*logger.Logger, error) {
	if cfg == nil {
		cfg = logger.DefaultConfig()
	}

	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	consoleCfg := *cfg
	consoleCfg.Output = logger.OutputConsole
	local, err := logger.New(&consoleCfg)
	if err != nil {
		return nil, err
	}

	provider, err := NewProvider(ctx, otelCfg)
	if err != nil {
		return nil, err
	}

	core := NewCombinedCore(local.Core(), provider, level)
	return logger.NewWithCore(cfg, core, provider), nil
}
