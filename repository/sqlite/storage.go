package storage

import (
	"errors"
	"fmt"
	"time"

	apperrors "taskboard/internal/domain/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StateRecord is one persisted store blob, keyed by the store's state
// key.
type StateRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Blob      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for StateRecord.
func (StateRecord) TableName() string {
	return "store_state"
}

// Storage is a sqlite-backed state backend: a single local database
// file holding one row per store.
type Storage struct {
	db *gorm.DB
}

func NewStorage(path string) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.AutoMigrate(&StateRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Save upserts the blob under its key.
func (s *Storage) Save(key string, blob []byte) error {
	record := StateRecord{Key: key, Blob: blob, UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save state %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Load(key string) ([]byte, error) {
	var record StateRecord
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load state %s: %w", key, err)
	}
	return record.Blob, nil
}
