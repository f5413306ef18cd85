package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/caloria-app/backend/internal/models"
)

// ProfileDocument is the single-row table the sqlite backend persists the
// serialized profile into.
type ProfileDocument struct {
	Key       string `gorm:"primaryKey;size:255"`
	Payload   string
	UpdatedAt time.Time
}

// SQLiteStore keeps the profile document in a sqlite database via GORM.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the sqlite database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	if err := db.AutoMigrate(&ProfileDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate profile table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() models.UserProfile {
	var doc ProfileDocument
	if err := s.db.First(&doc, "key = ?", StorageKey).Error; err != nil {
		return models.DefaultProfile()
	}

	return decodeProfile([]byte(doc.Payload))
}

func (s *SQLiteStore) Save(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	doc := ProfileDocument{Key: StorageKey, Payload: string(data)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&doc).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}
