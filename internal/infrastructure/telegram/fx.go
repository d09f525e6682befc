// Package telegram contains the outbound Telegram Bot API client
package telegram

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/config"
)

// Module provides the Telegram client for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideClient),
	fx.Invoke(registerWebhookOnStart),
)

// provideClient creates the Telegram client from config
func provideClient(cfg *config.TelegramConfig, logger zerolog.Logger) (*Client, error) {
	return NewClient(cfg, logger)
}

// registerWebhookOnStart points Telegram at WEBHOOK_URL when it is configured.
// Registration failure is logged, not fatal: the webhook may already be set
// or can be set externally.
func registerWebhookOnStart(lc fx.Lifecycle, client *Client, webhook *config.WebhookConfig, logger zerolog.Logger) {
	if webhook.URL == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.SetWebhook(ctx, webhook.URL, webhook.Secret); err != nil {
				logger.Error().Err(err).Str("url", webhook.URL).Msg("Failed to set webhook on startup")
			}
			return nil
		},
	})
}
