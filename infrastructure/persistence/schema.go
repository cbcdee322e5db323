package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"content-pipeline/domain/model"
	"content-pipeline/infrastructure/logger"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Models lists every persisted record type in creation order; referenced tables come first.
func Models() []interface{} {
	return []interface{}{
		&model.Account{},
		&model.Trend{},
		&model.Video{},
		&model.Analytics{},
		&model.TrendingSound{},
	}
}

// InitializeStorage creates the tables that are absent. Existing tables are left untouched,
// so it is safe to call at every startup and from concurrent callers.
// Each table is created together with its indexes in one transaction.
func InitializeStorage(ctx context.Context, db *gorm.DB) error {
	for _, m := range Models() {
		created := false
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			migrator := tx.Migrator()
			if migrator.HasTable(m) {
				return nil
			}
			if err := migrator.CreateTable(m); err != nil {
				return err
			}
			created = true
			return nil
		})
		if err != nil {
			// lost a race with another initializer
			if isTableExists(err) && db.WithContext(ctx).Migrator().HasTable(m) {
				continue
			}
			return fmt.Errorf("%w: create table for %T: %w", ErrStorage, m, err)
		}
		if created {
			logger.GetLogger().WithField("model", fmt.Sprintf("%T", m)).Info("created table")
		}
	}
	return nil
}

func isTableExists(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrError {
		return false
	}
	msg := sqliteErr.Error()
	return strings.HasPrefix(msg, "table ") && strings.HasSuffix(msg, "already exists")
}
