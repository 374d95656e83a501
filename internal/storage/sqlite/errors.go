package sqlite

import (
	"errors"
	"fmt"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/travelbuddy/internal/storage"
)

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure.
func isUniqueViolation(err error) bool {
	var serr *msqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Extended codes disabled; fall back to the message.
		return strings.Contains(serr.Error(), "UNIQUE constraint failed")
	}
	return false
}

// insertError wraps an insert failure, mapping unique violations to storage.ErrDuplicate.
func insertError(what string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("failed to insert %s: %w", what, storage.ErrDuplicate)
	}
	return fmt.Errorf("failed to insert %s: %w", what, err)
}
