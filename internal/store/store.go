// Package store provides the durable key/value blob storage every other
// component persists through. Values are serialized, reversibly encoded and
// written to an embedded sqlite database. There is no atomicity across keys;
// callers that write several keys accept partial updates on crash.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Well-known keys.
const (
	KeyContacts        = "contacts"
	KeyInvoices        = "invoices"
	KeyInvoiceLogs     = "invoiceLogs"
	KeyLastNumber      = "lastInvoiceNumber"
	KeyPartLookupSites = "partLookupSites"
	KeyPartsDatabase   = "partsDatabase"
	KeyTutorialSeen    = "hasSeenTutorial"
)

type blob struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

func (blob) TableName() string { return "blobs" }

// Store is a durable key/value blob store.
type Store struct {
	db *gorm.DB
}

// Open establishes the sqlite connection and migrates the blob table.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&blob{}); err != nil {
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Put encodes value and writes it under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	encoded, err := encode(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}

	row := blob{Key: key, Value: encoded, UpdatedAt: time.Now()}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}

	return nil
}

// Get reads the value under key into dest. It returns false when the key is
// absent or the stored blob cannot be decoded; decode failures are never
// surfaced as errors so callers fall back to defaults.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var row blob

	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading %q: %w", key, err)
	}

	return decode(row.Value, dest), nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&blob{}, "key = ?", key).Error
}

// PutPlain writes a raw string under key without the encode step. Used for
// flags that carry nothing worth obscuring, like the tutorial-seen marker.
func (s *Store) PutPlain(ctx context.Context, key, value string) error {
	row := blob{Key: key, Value: value, UpdatedAt: time.Now()}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// GetPlain reads a raw string written with PutPlain.
func (s *Store) GetPlain(ctx context.Context, key string) (string, bool, error) {
	var row blob

	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}

	return row.Value, true, nil
}
