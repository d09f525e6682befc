package postgres

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/deps"
)

// userDirectory answers registration checks against a pre-provisioned users
// table. Not wired by default; userdir.AllowAll preserves the reference
// behavior until a deployment opts in.
type userDirectory struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewUserDirectory creates a database-backed user directory
func NewUserDirectory(db *gorm.DB, logger zerolog.Logger) deps.UserDirectory {
	return &userDirectory{
		db:     db,
		logger: logger,
	}
}

// Exists implements deps.UserDirectory. Lookup failures count as unknown.
func (d *userDirectory) Exists(ctx context.Context, userID int64) bool {
	if d.db == nil {
		return false
	}

	var count int64
	err := d.db.WithContext(ctx).
		Table("users").
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		d.logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to check user existence")
		return false
	}
	return count > 0
}
