// Package buissines contains business logic for the media domain
package buissines

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/deps"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/entities"
)

// UseCase dispatches one inbound update end to end: payload routing,
// media retrieval, the three-tier fan-out and the user-facing reply
type UseCase struct {
	fetcher deps.MediaFetcher
	cache   deps.MediaCache
	files   deps.FileStorage
	records deps.MediaRepository
	users   deps.UserDirectory
	sender  deps.ReplySender
	logger  zerolog.Logger
}

// NewUseCase creates a new UseCase instance
func NewUseCase(
	fetcher deps.MediaFetcher,
	cache deps.MediaCache,
	files deps.FileStorage,
	records deps.MediaRepository,
	users deps.UserDirectory,
	sender deps.ReplySender,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		fetcher: fetcher,
		cache:   cache,
		files:   files,
		records: records,
		users:   users,
		sender:  sender,
		logger:  logger,
	}
}

// HandleUpdate processes one update to completion. Errors are contained
// here: the webhook endpoint has already answered the platform, so nothing
// propagates past logging and the user-facing reply.
func (uc *UseCase) HandleUpdate(ctx context.Context, update *models.Update) {
	uc.logger.Info().Int64("update_id", update.ID).Msg("Processing update")

	message := update.Message
	if message == nil {
		message = update.EditedMessage
	}
	if message == nil {
		if update.CallbackQuery != nil {
			uc.handleCallback(ctx, update.CallbackQuery)
		}
		return
	}

	if message.From == nil {
		uc.logger.Warn().Int64("update_id", update.ID).Msg("Message without sender, ignoring")
		return
	}

	userID := message.From.ID
	chatID := message.Chat.ID

	if !uc.users.Exists(ctx, userID) {
		uc.logger.Warn().Int64("user_id", userID).Msg("Unknown user, ignoring message")
		if err := uc.sender.SendMessage(ctx, chatID, "Вы не зарегистрированы в сервисе. Пожалуйста, зарегистрируйтесь.", nil, ""); err != nil {
			uc.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send registration notice")
		}
		return
	}

	if len(message.Photo) > 0 {
		// PhotoSize array is ordered small to large; take the largest
		largest := message.Photo[len(message.Photo)-1]
		uc.processMedia(ctx, chatID, userID, entities.MediaReference{
			FileID: largest.FileID,
			Kind:   entities.KindPhoto,
		})
	}

	if message.Video != nil {
		uc.processMedia(ctx, chatID, userID, entities.MediaReference{
			FileID:   message.Video.FileID,
			Kind:     entities.KindVideo,
			FileName: message.Video.FileName,
		})
	}

	if message.Text != "" {
		uc.handleText(ctx, chatID, userID, message.Text)
	}
}

// processMedia runs the retrieval protocol and fans the payload out to the
// cache, filesystem and database tiers. The tiers are independent: one
// failing tier never blocks the others or the acknowledgement reply.
func (uc *UseCase) processMedia(ctx context.Context, chatID int64, userID int64, ref entities.MediaReference) {
	uc.logger.Info().
		Str("file_id", ref.FileID).
		Str("kind", string(ref.Kind)).
		Int64("user_id", userID).
		Msg("Incoming media")

	data, remotePath, err := uc.fetcher.FetchMedia(ctx, ref.FileID)
	if err != nil {
		uc.logger.Error().Err(err).Str("file_id", ref.FileID).Msg("Failed to fetch media")
		uc.reply(ctx, chatID, uc.errorNotice(ref.Kind))
		return
	}

	fileName := ref.FileName
	if fileName == "" {
		fileName = path.Base(remotePath)
	}

	uc.cache.Put(ref.FileID, entities.CacheEntry{
		Data:     data,
		UserID:   userID,
		Kind:     ref.Kind,
		FileName: fileName,
		StoredAt: time.Now().UTC(),
	})

	storedName := fileName
	if fsPath, err := uc.files.Store(data, fileName); err != nil {
		uc.logger.Error().Err(err).Str("file_id", ref.FileID).Msg("Failed to save media to filesystem")
	} else {
		storedName = filepath.Base(fsPath)
	}

	uc.records.Save(ctx, &entities.Media{
		UserID:    userID,
		FileID:    ref.FileID,
		MediaType: string(ref.Kind),
		FileName:  fileName,
		Data:      data,
	})

	uc.reply(ctx, chatID, uc.savedNotice(ref.Kind, storedName))
}

// handleText answers the small command surface: /start with an inline
// keyboard, /list_cache, and an echo for everything else
func (uc *UseCase) handleText(ctx context.Context, chatID int64, userID int64, text string) {
	text = strings.TrimSpace(text)
	uc.logger.Info().Int64("user_id", userID).Str("text", truncate(text, 80)).Msg("Text message")

	switch {
	case strings.HasPrefix(text, "/start"):
		keyboard := &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: "Помощь", CallbackData: "help"}},
				{{Text: "Посмотреть медиа (cache)", CallbackData: "list_cache"}},
			},
		}
		if err := uc.sender.SendMessage(ctx, chatID, "Привет! Я готов принимать медиа. Отправь фото или видео.", keyboard, ""); err != nil {
			uc.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send start reply")
		}

	case strings.HasPrefix(text, "/list_cache"):
		keys := uc.cache.Keys()
		listing := "нет"
		if len(keys) > 0 {
			listing = strings.Join(keys, "\n")
		}
		uc.reply(ctx, chatID, fmt.Sprintf("Cached file_ids (%d):\n%s", len(keys), listing))

	default:
		uc.reply(ctx, chatID, fmt.Sprintf("Вы написали: %s", text))
	}
}

// handleCallback acknowledges a callback query. Real callback routing is an
// extension point; only the acknowledgement is sent.
func (uc *UseCase) handleCallback(ctx context.Context, cb *models.CallbackQuery) {
	uc.logger.Info().
		Int64("user_id", cb.From.ID).
		Str("data", cb.Data).
		Msg("Received callback query")

	if err := uc.sender.AnswerCallback(ctx, cb.ID); err != nil {
		uc.logger.Error().Err(err).Str("callback_id", cb.ID).Msg("Failed to answer callback query")
	}
}

// reply sends a plain text reply, logging rather than propagating failures
func (uc *UseCase) reply(ctx context.Context, chatID int64, text string) {
	if err := uc.sender.SendMessage(ctx, chatID, text, nil, ""); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send reply")
	}
}

func (uc *UseCase) savedNotice(kind entities.MediaKind, storedName string) string {
	if kind == entities.KindVideo {
		return fmt.Sprintf("Видео получено и сохранено (файл: %s)", storedName)
	}
	return fmt.Sprintf("Фото получено и сохранено (файл: %s)", storedName)
}

func (uc *UseCase) errorNotice(kind entities.MediaKind) string {
	if kind == entities.KindVideo {
		return "Ошибка при обработке видео."
	}
	return "Ошибка при обработке фото."
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
