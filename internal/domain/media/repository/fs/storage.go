// Package fs contains the filesystem media tier
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	mediaerrors "github.com/yourusername/telegram-media-vault/internal/domain/media/errors"
)

// Storage writes media payloads into a single configured directory
type Storage struct {
	dir    string
	logger zerolog.Logger
}

// NewStorage creates a new filesystem storage rooted at dir
func NewStorage(dir string, logger zerolog.Logger) *Storage {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Failed to create media directory")
	}
	return &Storage{
		dir:    dir,
		logger: logger,
	}
}

// Store writes data to the media directory under a nanosecond-timestamp
// prefixed name and returns the destination path. The prefix is best-effort
// collision avoidance, not a guarantee.
func (s *Storage) Store(data []byte, suggestedName string) (string, error) {
	safe := sanitizeName(suggestedName)
	if safe == "" {
		safe = uuid.NewString()
	}

	dest := filepath.Join(s.dir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), safe))

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", mediaerrors.ErrStorage, err)
	}

	s.logger.Info().Str("path", dest).Int("size", len(data)).Msg("Saved media to filesystem")
	return dest, nil
}

// sanitizeName strips path separators so a declared filename cannot escape
// the media directory
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return strings.TrimSpace(name)
}
