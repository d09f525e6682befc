// Package workers contains the background dispatch pool for the media domain
package workers

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/config"
)

// Module provides the dispatch pool for fx dependency injection
var Module = fx.Module("media-workers",
	fx.Provide(providePool),
	fx.Invoke(registerPoolLifecycle),
)

// providePool creates the dispatch pool from config
func providePool(cfg *config.DispatchConfig, handler UpdateHandler, logger zerolog.Logger) *Pool {
	return NewPool(cfg.Workers, cfg.QueueSize, handler, logger.With().Str("component", "dispatch-pool").Logger())
}

// registerPoolLifecycle starts and stops the pool with the application
func registerPoolLifecycle(lc fx.Lifecycle, pool *Pool) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			pool.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return pool.Stop()
		},
	})
}
