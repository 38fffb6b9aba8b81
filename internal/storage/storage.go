// Package storage is the persistent key-value store behind the cache
// layer: a single SQLite table of string keys and JSON envelope values
// that survives process restarts.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one persisted key-value pair. The value is the cache layer's
// JSON {data, timestamp} envelope; this package does not interpret it.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Store is a SQLite-backed key-value store.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the store at the given path, creating the
// parent directory if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create store directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return &Store{db: db}, nil
}

// DefaultPath returns the store location under the user cache dir.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine cache directory: %w", err)
	}
	return filepath.Join(dir, "salat", "cache.db"), nil
}

// Get returns the value for key, or ok=false when absent.
func (s *Store) Get(key string) (string, bool, error) {
	var e Entry
	result := s.db.First(&e, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, result.Error
	}
	return e.Value, true, nil
}

// Set writes (or overwrites) the value for key.
func (s *Store) Set(key, value string) error {
	e := Entry{Key: key, Value: value}
	return s.db.Save(&e).Error
}

// Delete removes the entry for key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
