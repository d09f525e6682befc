// Package postgres contains the database media tier
package postgres

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/deps"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/entities"
)

// mediaRepository implements deps.MediaRepository over gorm.
// db may be nil when DATABASE_URL is unset or the database was unreachable
// at startup; every Save then degrades to false instead of failing the
// dispatch (degrade-don't-crash).
type mediaRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *gorm.DB, logger zerolog.Logger) deps.MediaRepository {
	return &mediaRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts one media row. It returns false, never an error, when the
// database is unavailable or the insert fails.
func (r *mediaRepository) Save(ctx context.Context, media *entities.Media) bool {
	if r.db == nil {
		r.logger.Warn().Str("file_id", media.FileID).Msg("Database not configured, skipping DB save")
		return false
	}

	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		r.logger.Error().Err(err).Str("file_id", media.FileID).Msg("Failed to save media to DB")
		return false
	}

	r.logger.Info().
		Int64("user_id", media.UserID).
		Str("file_id", media.FileID).
		Str("media_type", media.MediaType).
		Msg("Saved media to DB")
	return true
}
