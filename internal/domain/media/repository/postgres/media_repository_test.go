package postgres

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/entities"
)

// TestSave_DegradesWithoutDatabase: the database tier reports false, never
// an error, when no connection is configured
func TestSave_DegradesWithoutDatabase(t *testing.T) {
	repo := NewMediaRepository(nil, zerolog.Nop())

	ok := repo.Save(context.Background(), &entities.Media{
		UserID:    111,
		FileID:    "file-abc",
		MediaType: "photo",
		Data:      []byte("payload"),
	})

	if ok {
		t.Error("Expected Save to return false without a database")
	}
}

func TestUserDirectory_DegradesWithoutDatabase(t *testing.T) {
	dir := NewUserDirectory(nil, zerolog.Nop())

	if dir.Exists(context.Background(), 111) {
		t.Error("Expected Exists to return false without a database")
	}
}
