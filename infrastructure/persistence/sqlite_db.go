package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"content-pipeline/infrastructure/configuration"
	"content-pipeline/infrastructure/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteDB opens the store at cfg.Path with foreign keys enforced and verifies it is reachable.
func NewSQLiteDB(cfg configuration.Database) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(logger.Logger(), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorage, cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	if err := HealthCheck(context.Background(), sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.GetLogger().WithField("path", cfg.Path).Info("SQLite store opened")
	return db, nil
}

// HealthCheck pings the store.
func HealthCheck(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrStorage, err)
	}
	return nil
}
