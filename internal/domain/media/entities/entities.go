// Package entities contains domain entities
package entities

import "time"

// MediaKind is the media payload kind
type MediaKind string

const (
	KindPhoto MediaKind = "photo"
	KindVideo MediaKind = "video"
)

// MediaReference points at a remote binary asset held by Telegram.
// FileID is the platform-assigned stable identifier, FileName an optional
// declared filename hint.
type MediaReference struct {
	FileID   string
	Kind     MediaKind
	FileName string
}

// CacheEntry is one cached download: the raw bytes plus the metadata the
// admin surface reports
type CacheEntry struct {
	Data     []byte
	UserID   int64
	Kind     MediaKind
	FileName string
	StoredAt time.Time
}

// Media represents one persisted download event. Duplicate downloads of the
// same file id produce duplicate rows; the store does not deduplicate.
type Media struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null"`
	FileID    string    `gorm:"column:file_id;not null"`
	MediaType string    `gorm:"column:media_type;not null"`
	FileName  string    `gorm:"column:file_name"`
	Data      []byte    `gorm:"column:data;type:bytea"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for Media
func (Media) TableName() string {
	return "media"
}
