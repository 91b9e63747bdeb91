package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// KVRecord is the single table backing the sqlite Storage.
type KVRecord struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName implements the gorm table naming hook.
func (KVRecord) TableName() string {
	return "kv_records"
}

// SQLite persists records in a local sqlite database via gorm.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (creating if needed) the database at path and migrates
// the record table.
func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("localstore: open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, fmt.Errorf("localstore: migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Read(ctx context.Context, key string) ([]byte, error) {
	var record KVRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record.Value, nil
}

func (s *SQLite) Write(ctx context.Context, key string, data []byte) error {
	record := KVRecord{Key: key, Value: data, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).
		Error
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVRecord{}, "key = ?", key).Error
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
