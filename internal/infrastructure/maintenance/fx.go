// Package maintenance contains scheduled housekeeping jobs
package maintenance

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/config"
)

// Module provides maintenance jobs for fx dependency injection
var Module = fx.Module("maintenance",
	fx.Provide(provideLogCleaner),
	fx.Invoke(registerCleanerLifecycle),
)

// provideLogCleaner creates the log cleaner from config
func provideLogCleaner(cfg *config.StorageConfig, logger zerolog.Logger) *LogCleaner {
	return NewLogCleaner(cfg.LogDir, logger.With().Str("component", "log-cleaner").Logger())
}

// registerCleanerLifecycle starts and stops the cleanup schedule with the application
func registerCleanerLifecycle(lc fx.Lifecycle, cleaner *LogCleaner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return cleaner.Start()
		},
		OnStop: func(_ context.Context) error {
			cleaner.Stop()
			return nil
		},
	})
}
