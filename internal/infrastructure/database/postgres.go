package database

import (
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yourusername/telegram-media-vault/config"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/entities"
)

// NewPostgresDB connects to PostgreSQL and migrates the media table.
// It returns nil instead of an error when the database is unconfigured or
// unreachable: the database tier degrades, the service still starts.
func NewPostgresDB(cfg *config.DatabaseConfig, logger zerolog.Logger) *gorm.DB {
	if cfg.URL == "" {
		logger.Warn().Msg("DATABASE_URL not set, database tier disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to connect to database, database tier disabled")
		return nil
	}

	if err := db.AutoMigrate(&entities.Media{}); err != nil {
		logger.Warn().Err(err).Msg("Failed to migrate media table, database tier disabled")
		return nil
	}

	logger.Info().Msg("Connected to PostgreSQL")
	return db
}
