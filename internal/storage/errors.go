package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Typed outcomes for store operations. Handlers branch on these instead
// of parsing driver messages.
var (
	// ErrNotFound means the id resolved to no row.
	ErrNotFound = errors.New("record not found")
	// ErrValidation means a required field was missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrIntegrity means the database rejected the write (foreign key,
	// not-null or unique constraint).
	ErrIntegrity = errors.New("integrity constraint violated")
	// ErrConflict means the operation is blocked by dependent rows.
	ErrConflict = errors.New("conflicting records exist")
)

// MapError normalizes driver errors into the typed taxonomy. Postgres
// and SQLite phrase constraint failures differently, so matching is on
// the lowercased message.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "constraint") {
		return fmt.Errorf("%w: %v", ErrIntegrity, err)
	}
	return err
}
