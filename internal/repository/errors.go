package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/domain"
)

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// mapWriteError converts SQLite constraint failures into domain errors so
// callers can branch with errors.Is. Anything else is a store failure and is
// returned with context only.
func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: already exists: %w", op, domain.ErrInvalidInput)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: referenced record missing: %w", op, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// mapRowError converts sql.ErrNoRows into a domain not-found error.
func mapRowError(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(what)
	}
	return fmt.Errorf("scanning %s: %w", what, err)
}
