package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	defer os.Unsetenv("TELEGRAM_BOT_TOKEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Telegram.APIEndpoint != "https://api.telegram.org" {
		t.Errorf("Unexpected API endpoint default: %q", cfg.Telegram.APIEndpoint)
	}
	if cfg.Storage.MediaDir != "./media" {
		t.Errorf("Unexpected media dir default: %q", cfg.Storage.MediaDir)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Unexpected port default: %d", cfg.Server.Port)
	}
	if cfg.Dispatch.Workers != 4 || cfg.Dispatch.QueueSize != 64 {
		t.Errorf("Unexpected dispatch defaults: %+v", cfg.Dispatch)
	}
	if cfg.Storage.CacheMaxEntries != 0 {
		t.Errorf("Expected unbounded cache by default, got %d", cfg.Storage.CacheMaxEntries)
	}
}

func TestLoad_RequiresToken(t *testing.T) {
	os.Unsetenv("TELEGRAM_BOT_TOKEN")

	if _, err := Load(); err == nil {
		t.Error("Expected error when TELEGRAM_BOT_TOKEN is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	envs := map[string]string{
		"TELEGRAM_BOT_TOKEN":  "test-token",
		"WEBHOOK_SECRET":      "s3cret",
		"LISTEN_PORT":         "9000",
		"DISPATCH_WORKERS":    "8",
		"DISPATCH_QUEUE_SIZE": "128",
	}
	for k, v := range envs {
		os.Setenv(k, v)
	}
	defer func() {
		for k := range envs {
			os.Unsetenv(k)
		}
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Webhook.Secret != "s3cret" {
		t.Errorf("Webhook secret not read: %q", cfg.Webhook.Secret)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port not read: %d", cfg.Server.Port)
	}
	if cfg.Dispatch.Workers != 8 || cfg.Dispatch.QueueSize != 128 {
		t.Errorf("Dispatch config not read: %+v", cfg.Dispatch)
	}
}

func TestValidate_RejectsBadDispatch(t *testing.T) {
	cfg := &Config{
		Telegram: TelegramConfig{BotToken: "x"},
		Dispatch: DispatchConfig{Workers: 0, QueueSize: 64},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero workers")
	}
}
