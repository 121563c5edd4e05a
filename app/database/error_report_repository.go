package database

import (
	"database/sql"
	"fmt"
)

var _ ErrorReportRepository = (*errorReportRepository)(nil)

type errorReportRepository struct {
	db *DB
}

func NewErrorReportRepository(db *DB) ErrorReportRepository {
	return &errorReportRepository{db: db}
}

// Insert stores an error report. No referential check against prediction is
// performed; the tables share web_url by convention only.
func (r *errorReportRepository) Insert(report ErrorReport) error {
	_, err := r.db.Exec(`
		INSERT INTO error_report (web_url, description)
		VALUES (?, ?)
	`, report.WebURL, report.Description)

	if err != nil {
		return fmt.Errorf("failed to insert error report: %w", wrapStorageErr(err))
	}

	return nil
}

func (r *errorReportRepository) Get(webURL string) (*ErrorReport, error) {
	var report ErrorReport
	err := r.db.QueryRow(`
		SELECT web_url, description
		FROM error_report
		WHERE web_url = ?
	`, webURL).Scan(&report.WebURL, &report.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get error report: %w", err)
	}

	return &report, nil
}

func (r *errorReportRepository) GetCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM error_report").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get error report count: %w", err)
	}
	return count, nil
}

// GetOrphanCount returns reports with no matching prediction row.
func (r *errorReportRepository) GetOrphanCount() (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM error_report e
		WHERE NOT EXISTS (
			SELECT 1 FROM prediction p WHERE p.web_url = e.web_url
		)
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get orphan report count: %w", err)
	}
	return count, nil
}
