package database

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func tableExists(t *testing.T, db *DB, name string) bool {
	t.Helper()

	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = ?
	`, name).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query sqlite_master: %v", err)
	}

	return count > 0
}

func TestCreateSchema(t *testing.T) {
	db := openTestDB(t)

	if err := CreateSchema(db); err != nil {
		t.Fatalf("CreateSchema failed on fresh database: %v", err)
	}

	for _, table := range []string{"prediction", "error_report", "dataset"} {
		if !tableExists(t, db, table) {
			t.Errorf("Table %s should exist after CreateSchema", table)
		}
	}
}

func TestCreateSchema_SecondApplicationFails(t *testing.T) {
	db := openTestDB(t)

	if err := CreateSchema(db); err != nil {
		t.Fatalf("First CreateSchema failed: %v", err)
	}

	err := CreateSchema(db)
	if err == nil {
		t.Fatal("Second CreateSchema should fail against an initialized store")
	}
	if !errors.Is(err, ErrSchemaConflict) {
		t.Errorf("Expected ErrSchemaConflict, got: %v", err)
	}
}

func TestCreateSchema_RollsBackOnPartialConflict(t *testing.T) {
	db := openTestDB(t)

	// A pre-existing dataset table makes the third statement fail; the first
	// two must be rolled back with it.
	_, err := db.Exec(`CREATE TABLE dataset (web_url TEXT PRIMARY KEY NOT NULL)`)
	if err != nil {
		t.Fatalf("Failed to pre-create dataset table: %v", err)
	}

	err = CreateSchema(db)
	if err == nil {
		t.Fatal("CreateSchema should fail when a table already exists")
	}
	if !errors.Is(err, ErrSchemaConflict) {
		t.Errorf("Expected ErrSchemaConflict, got: %v", err)
	}

	if tableExists(t, db, "prediction") {
		t.Error("prediction table should not exist after rollback")
	}
	if tableExists(t, db, "error_report") {
		t.Error("error_report table should not exist after rollback")
	}
}
