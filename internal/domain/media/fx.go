// Package media contains the media domain module
package media

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/config"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/deps"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/repository/fs"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/repository/memory"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/repository/postgres"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/usecase/buissines"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/userdir"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/workers"
	"github.com/yourusername/telegram-media-vault/internal/infrastructure/telegram"
)

// Module provides media domain components for fx dependency injection
var Module = fx.Module("media",
	// Storage tiers
	fx.Provide(provideCache),
	fx.Provide(provideFileStorage),
	fx.Provide(postgres.NewMediaRepository),

	// User directory (reference behavior: allow everyone)
	fx.Provide(userdir.NewAllowAll),

	// Outbound capabilities, backed by the Telegram client
	fx.Provide(provideFetcher),
	fx.Provide(provideSender),

	// UseCase (update dispatcher)
	fx.Provide(buissines.NewUseCase),
	fx.Provide(provideUpdateHandler),

	// Dispatch pool
	workers.Module,
)

// provideCache creates the in-memory cache tier
func provideCache(cfg *config.StorageConfig) deps.MediaCache {
	return memory.New(cfg.CacheMaxEntries)
}

// provideFileStorage creates the filesystem tier
func provideFileStorage(cfg *config.StorageConfig, logger zerolog.Logger) deps.FileStorage {
	return fs.NewStorage(cfg.MediaDir, logger)
}

// provideFetcher exposes the Telegram client as the media fetcher capability
func provideFetcher(client *telegram.Client) deps.MediaFetcher {
	return client
}

// provideSender exposes the Telegram client as the reply sender capability
func provideSender(client *telegram.Client) deps.ReplySender {
	return client
}

// provideUpdateHandler exposes the use case to the dispatch pool
func provideUpdateHandler(uc *buissines.UseCase) workers.UpdateHandler {
	return uc
}
