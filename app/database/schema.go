package database

import (
	"fmt"
)

// Baseline table definitions. The prediction/error_report link on web_url is
// deliberately left without a foreign key, matching the deployed schema.
var schemaStatements = []string{
	`CREATE TABLE prediction (
		web_url          TEXT PRIMARY KEY NOT NULL,
		is_gambling_site BOOLEAN,
		scraping_time    TIMESTAMP NOT NULL,
		is_error         BOOLEAN NOT NULL
	)`,
	`CREATE TABLE error_report (
		web_url     TEXT PRIMARY KEY NOT NULL,
		description TEXT NOT NULL
	)`,
	// dataset contains data from manual scraping for modeling
	`CREATE TABLE dataset (
		web_url          TEXT PRIMARY KEY NOT NULL,
		scraping_time    TIMESTAMP NOT NULL,
		is_gambling_site BOOLEAN NOT NULL
	)`,
}

// CreateSchema installs the three tables in a single transaction. Either all
// tables are created or none are: any failure, including a table that already
// exists, rolls the whole transaction back and surfaces ErrSchemaConflict or
// the driver error unchanged.
func CreateSchema(db *DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create schema: %w", wrapStorageErr(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}

	return nil
}
