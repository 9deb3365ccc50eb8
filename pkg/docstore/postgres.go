package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const advisoryLockSQL = "SELECT pg_advisory_xact_lock(hashtext(?))"

// Document is the row layout used by PostgresStore.
type Document struct {
	Key       string         `gorm:"type:text;primaryKey"`
	Body      datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}

// PostgresStore keeps documents in a single jsonb table. Update holds a
// transaction-scoped advisory lock on the key, which also covers keys
// that have no row yet.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("migrate documents: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(doc.Body), nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, body []byte) error {
	return upsert(s.db.WithContext(ctx), key, body)
}

func (s *PostgresStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(advisoryLockSQL, key).Error; err != nil {
			return fmt.Errorf("lock %s: %w", key, err)
		}

		var doc Document
		err := tx.Where("key = ?", key).Take(&doc).Error

		exists := true
		if errors.Is(err, gorm.ErrRecordNotFound) {
			exists = false
		} else if err != nil {
			return fmt.Errorf("select %s: %w", key, err)
		}

		var current []byte
		if exists {
			current = []byte(doc.Body)
		}
		next, err := fn(current, exists)
		if err != nil {
			return err
		}
		return upsert(tx, key, next)
	})
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func upsert(db *gorm.DB, key string, body []byte) error {
	doc := Document{Key: key, Body: datatypes.JSON(body), UpdatedAt: time.Now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
