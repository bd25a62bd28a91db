// Package store is the append-only log of BMI computations, kept in a local
// SQLite file so history survives restarts.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	// ErrPersist wraps every failed write. Callers must not report the
	// computation as saved when Insert returns it.
	ErrPersist = errors.New("record not saved")
	// ErrInvalidRecord is returned for non-positive weight or height.
	ErrInvalidRecord = errors.New("weight and height must be greater than zero")
)

// Record maps to one row of bmi_records.
type Record struct {
	ID        int64     `json:"id"        gorm:"column:id;primaryKey"`
	Weight    float64   `json:"weight"    gorm:"column:weight"`
	Height    float64   `json:"height"    gorm:"column:height"`
	BMI       float64   `json:"bmi"       gorm:"column:bmi"`
	Category  string    `json:"category"  gorm:"column:category"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp"`
}

// TableName keeps the table name compatible with existing history files.
func (Record) TableName() string { return "bmi_records" }

// Store is a file-backed record log. It is safe for use by one process; the
// single pooled connection serializes writers.
type Store struct {
	db     *gorm.DB
	now    func() time.Time
	logger *zap.Logger
}

// Option customizes Open.
type Option func(*Store)

// WithClock overrides the timestamp source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a component logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open opens (creating if needed) the SQLite file at path and applies pending
// migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	s := &Store{now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	// Insert stamps rows from s.now itself; gorm keeps the wall clock.
	db, err := Connect(path, nil)
	if err != nil {
		return nil, err
	}

	results, err := Migrate(ctx, db)
	if err != nil {
		_ = closeDB(db)
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	for _, r := range results {
		if r.Applied {
			s.logger.Info("migration applied", zap.String("migration", r.Name))
		}
	}

	s.db = db
	return s, nil
}

// Connect opens the SQLite file at path without migrating it. now may be nil.
func Connect(path string, now func() time.Time) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc:        now,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	// One connection: SQLite allows a single writer, and this keeps id and
	// timestamp order in step.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB exposes the underlying gorm handle.
func (s *Store) DB() *gorm.DB { return s.db }

// Close releases the database file.
func (s *Store) Close() error { return closeDB(s.db) }

// Insert appends one computation. The store assigns ID and Timestamp; the row
// is committed before Insert returns, or not written at all.
func (s *Store) Insert(ctx context.Context, weight, height, bmi float64, category string) (Record, error) {
	if weight <= 0 || height <= 0 {
		return Record{}, ErrInvalidRecord
	}

	rec := Record{
		Weight:    weight,
		Height:    height,
		BMI:       bmi,
		Category:  category,
		Timestamp: s.now().UTC(),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		s.logger.Error("insert bmi record failed", zap.Error(err))
		return Record{}, fmt.Errorf("%w: insert bmi record: %w", ErrPersist, err)
	}

	s.logger.Debug("bmi record saved", zap.Int64("id", rec.ID), zap.String("category", category))
	return rec, nil
}

// Recent returns up to limit records, newest first (timestamp, then id,
// descending). An empty store or limit <= 0 yields an empty, non-nil slice.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	records := []Record{}
	if limit <= 0 {
		return records, nil
	}

	err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load recent bmi records: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Record{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count bmi records: %w", err)
	}
	return n, nil
}
