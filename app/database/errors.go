package database

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrSchemaConflict is returned when schema creation hits a table that
// already exists in the store.
var ErrSchemaConflict = errors.New("schema conflict")

// ErrConstraintViolation is returned when an insert supplies a null value
// for a required column or a duplicate primary key value.
var ErrConstraintViolation = errors.New("constraint violation")

// wrapStorageErr maps driver-level failures onto the store's error taxonomy.
// Anything else passes through unchanged.
func wrapStorageErr(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		if code&0xff == sqlite3.SQLITE_CONSTRAINT {
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		if code == sqlite3.SQLITE_ERROR && strings.Contains(se.Error(), "already exists") {
			return fmt.Errorf("%w: %v", ErrSchemaConflict, err)
		}
	}

	return err
}
