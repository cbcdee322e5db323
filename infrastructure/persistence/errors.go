package persistence

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrStorage means the store is unreachable, unwritable or corrupt.
	ErrStorage            = errors.New("storage error")
	ErrNotFound           = errors.New("record not found")
	ErrUniqueViolation    = errors.New("uniqueness violation")
	ErrReferenceViolation = errors.New("reference violation")
	// ErrCheckViolation covers NOT NULL and CHECK constraints.
	ErrCheckViolation = errors.New("constraint violation")
)

// classify maps driver and gorm errors onto the sentinels above, keeping the original in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrReferenceViolation, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %w", ErrReferenceViolation, err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: %w", ErrCheckViolation, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
