// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/internal/infrastructure/database"
	"github.com/yourusername/telegram-media-vault/internal/infrastructure/logger"
	"github.com/yourusername/telegram-media-vault/internal/infrastructure/maintenance"
	"github.com/yourusername/telegram-media-vault/internal/infrastructure/telegram"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	database.Module,
	telegram.Module,
	maintenance.Module,
)
