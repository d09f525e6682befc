// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/config"
	deliveryhttp "github.com/yourusername/telegram-media-vault/internal/delivery/http"
	"github.com/yourusername/telegram-media-vault/internal/domain"
	"github.com/yourusername/telegram-media-vault/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, database, telegram client, maintenance)
		infrastructure.Module,

		// Domain (media pipeline)
		domain.Module,

		// Delivery (webhook + admin HTTP surface)
		deliveryhttp.Module,
	)
}
