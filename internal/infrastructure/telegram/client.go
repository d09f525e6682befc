// Package telegram contains the outbound Telegram Bot API client
package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/yourusername/telegram-media-vault/config"
	mediaerrors "github.com/yourusername/telegram-media-vault/internal/domain/media/errors"
	pkgerrors "github.com/yourusername/telegram-media-vault/pkg/errors"
)

const (
	// Telegram serves file bodies slower than regular API calls
	requestTimeout  = 30 * time.Second
	downloadTimeout = 60 * time.Second

	// keep error bodies loggable
	maxErrorBodyBytes = 1024
)

// Client wraps the Telegram Bot API for the infrastructure layer.
// Bot API methods go through go-telegram/bot; raw file bodies are fetched
// directly from the file endpoint, which the library does not cover.
type Client struct {
	bot        *tgbot.Bot
	httpClient *http.Client
	fileBase   string
	logger     zerolog.Logger
}

// NewClient creates a new Telegram client wrapper
func NewClient(cfg *config.TelegramConfig, logger zerolog.Logger) (*Client, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	opts := []tgbot.Option{
		tgbot.WithSkipGetMe(),
	}
	if cfg.APIEndpoint != "https://api.telegram.org" {
		opts = append(opts, tgbot.WithServerURL(cfg.APIEndpoint))
	}

	bot, err := tgbot.New(cfg.BotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Msg("Telegram client created successfully")

	return &Client{
		bot: bot,
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
		fileBase: fmt.Sprintf("%s/file/bot%s", cfg.APIEndpoint, cfg.BotToken),
		logger:   logger,
	}, nil
}

// SetWebhook registers url as the bot's webhook. The secret token, when
// non-empty, is echoed back by Telegram in the X-Telegram-Bot-Api-Secret-Token
// header of every webhook call.
func (c *Client) SetWebhook(ctx context.Context, url string, secretToken string) error {
	c.logger.Info().Str("url", url).Bool("secret_set", secretToken != "").Msg("Setting webhook")

	ok, err := c.bot.SetWebhook(ctx, &tgbot.SetWebhookParams{
		URL:         url,
		SecretToken: secretToken,
	})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !ok {
		return fmt.Errorf("telegram refused webhook registration")
	}
	return nil
}

// DeleteWebhook removes the bot's webhook (switching back to polling)
func (c *Client) DeleteWebhook(ctx context.Context) error {
	c.logger.Info().Msg("Deleting webhook")

	if _, err := c.bot.DeleteWebhook(ctx, &tgbot.DeleteWebhookParams{}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// SendMessage sends a text message to chatID. replyMarkup and parseMode are optional.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyMarkup models.ReplyMarkup, parseMode string) error {
	if chatID == 0 {
		return mediaerrors.ErrEmptyChatID
	}
	if text == "" {
		return mediaerrors.ErrEmptyMessage
	}

	c.logger.Info().Int64("chat_id", chatID).Int("text_length", len(text)).Msg("Sending message")

	msgCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := c.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: replyMarkup,
		ParseMode:   models.ParseMode(parseMode),
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query so the client stops showing
// the progress indicator
func (c *Client) AnswerCallback(ctx context.Context, callbackQueryID string) error {
	msgCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if _, err := c.bot.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackQueryID,
	}); err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}
	return nil
}

// SendPhoto sends a photo from a filesystem path or raw bytes.
// Raw bytes take precedence when both are provided.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoPath string, photoBytes []byte, caption string) error {
	if chatID == 0 {
		return mediaerrors.ErrEmptyChatID
	}

	input, cleanup, err := inputFileFrom(photoPath, photoBytes, "photo.jpg")
	if err != nil {
		return err
	}
	defer cleanup()

	c.logger.Info().Int64("chat_id", chatID).Int("bytes_size", len(photoBytes)).Str("file", photoPath).Msg("Sending photo")

	msgCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err = c.bot.SendPhoto(msgCtx, &tgbot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   input,
		Caption: caption,
	})
	if err != nil {
		return fmt.Errorf("failed to send photo: %w", err)
	}
	return nil
}

// SendVideo sends a video from a filesystem path or raw bytes.
// Raw bytes take precedence when both are provided.
func (c *Client) SendVideo(ctx context.Context, chatID int64, videoPath string, videoBytes []byte, caption string) error {
	if chatID == 0 {
		return mediaerrors.ErrEmptyChatID
	}

	input, cleanup, err := inputFileFrom(videoPath, videoBytes, "video.mp4")
	if err != nil {
		return err
	}
	defer cleanup()

	c.logger.Info().Int64("chat_id", chatID).Int("bytes_size", len(videoBytes)).Str("file", videoPath).Msg("Sending video")

	msgCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err = c.bot.SendVideo(msgCtx, &tgbot.SendVideoParams{
		ChatID:  chatID,
		Video:   input,
		Caption: caption,
	})
	if err != nil {
		return fmt.Errorf("failed to send video: %w", err)
	}
	return nil
}

// inputFileFrom builds a media upload from raw bytes or a filesystem path,
// bytes winning when both are set. cleanup closes the opened file, if any.
func inputFileFrom(path string, data []byte, defaultName string) (models.InputFile, func(), error) {
	noop := func() {}

	if len(data) > 0 {
		return &models.InputFileUpload{
			Filename: defaultName,
			Data:     bytes.NewReader(data),
		}, noop, nil
	}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open media file: %w", err)
		}
		return &models.InputFileUpload{
			Filename: filepath.Base(path),
			Data:     file,
		}, func() { _ = file.Close() }, nil
	}

	return nil, noop, mediaerrors.ErrNoMediaSource
}

// ResolveFilePath resolves a platform file identifier to the short-lived
// remote path used for the actual download
func (c *Client) ResolveFilePath(ctx context.Context, fileID string) (string, error) {
	c.logger.Debug().Str("file_id", fileID).Msg("Resolving file path")

	msgCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	file, err := c.bot.GetFile(msgCtx, &tgbot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("%w: getFile %s: %v", mediaerrors.ErrFileNotFound, fileID, err)
	}
	if file.FilePath == "" {
		return "", fmt.Errorf("%w: getFile returned no file_path for %s", mediaerrors.ErrFileNotFound, fileID)
	}
	return file.FilePath, nil
}

// DownloadByPath downloads raw bytes from the file endpoint.
// Remote paths are short-lived and platform-issued; they are never cached.
func (c *Client) DownloadByPath(ctx context.Context, filePath string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.fileBase, filePath)
	c.logger.Debug().Str("file_path", filePath).Msg("Downloading file")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, pkgerrors.NewRemoteCallError(resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}
	return data, nil
}

// FetchMedia chains ResolveFilePath and DownloadByPath. A resolution
// failure short-circuits the download; no retry is attempted here.
// The returned remotePath carries the platform's filename hint.
func (c *Client) FetchMedia(ctx context.Context, fileID string) (data []byte, remotePath string, err error) {
	remotePath, err = c.ResolveFilePath(ctx, fileID)
	if err != nil {
		return nil, "", err
	}

	data, err = c.DownloadByPath(ctx, remotePath)
	if err != nil {
		return nil, "", err
	}
	return data, remotePath, nil
}
