// Package userdir contains user directory implementations
package userdir

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/deps"
)

// AllowAll is the reference-behavior user directory: every sender is
// considered registered. Swap in a persistence-backed implementation
// (see postgres.NewUserDirectory) to enforce real registration.
type AllowAll struct {
	logger zerolog.Logger
}

// NewAllowAll creates the constant-true user directory
func NewAllowAll(logger zerolog.Logger) deps.UserDirectory {
	return &AllowAll{logger: logger}
}

// Exists implements deps.UserDirectory
func (d *AllowAll) Exists(_ context.Context, userID int64) bool {
	d.logger.Debug().Int64("user_id", userID).Msg("User directory placeholder called")
	return true
}
