// Package deps contains interface definitions for the media domain dependencies
package deps

import (
	"context"

	"github.com/go-telegram/bot/models"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/entities"
)

// MediaFetcher retrieves remote binary content from Telegram.
// FetchMedia resolves the file id to a short-lived remote path and downloads
// it; remotePath carries the platform's filename hint.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, fileID string) (data []byte, remotePath string, err error)
}

// ReplySender sends acknowledgement replies back to the originating chat
type ReplySender interface {
	// SendMessage sends a text message. replyMarkup and parseMode are optional.
	SendMessage(ctx context.Context, chatID int64, text string, replyMarkup models.ReplyMarkup, parseMode string) error

	// AnswerCallback acknowledges a callback query
	AnswerCallback(ctx context.Context, callbackQueryID string) error
}

// MediaCache is the process-local cache tier, keyed by file identifier.
// Puts overwrite unconditionally; reads observe last-writer-wins state.
type MediaCache interface {
	Put(fileID string, entry entities.CacheEntry)
	Get(fileID string) (entities.CacheEntry, bool)
	Keys() []string
	Delete(fileID string) bool
}

// FileStorage is the filesystem tier. Store writes data under a
// collision-resistant name derived from suggestedName and returns the path.
type FileStorage interface {
	Store(data []byte, suggestedName string) (string, error)
}

// MediaRepository is the database tier. Save returns false instead of an
// error when the database is unavailable or the insert fails: persistence
// here is best-effort by design.
type MediaRepository interface {
	Save(ctx context.Context, media *entities.Media) bool
}

// UserDirectory answers whether a sender is known to the system
type UserDirectory interface {
	Exists(ctx context.Context, userID int64) bool
}
