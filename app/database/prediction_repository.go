package database

import (
	"database/sql"
	"fmt"
)

var _ PredictionRepository = (*predictionRepository)(nil)

type predictionRepository struct {
	db *DB
}

func NewPredictionRepository(db *DB) PredictionRepository {
	return &predictionRepository{db: db}
}

// Insert stores a prediction row. There is no update path: a second row for
// the same URL surfaces ErrConstraintViolation.
func (r *predictionRepository) Insert(p Prediction) error {
	_, err := r.db.Exec(`
		INSERT INTO prediction (web_url, is_gambling_site, scraping_time, is_error)
		VALUES (?, ?, ?, ?)
	`, p.WebURL, p.IsGamblingSite, p.ScrapingTime, p.IsError)

	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", wrapStorageErr(err))
	}

	return nil
}

func (r *predictionRepository) Get(webURL string) (*Prediction, error) {
	var p Prediction
	err := r.db.QueryRow(`
		SELECT web_url, is_gambling_site, scraping_time, is_error
		FROM prediction
		WHERE web_url = ?
	`, webURL).Scan(&p.WebURL, &p.IsGamblingSite, &p.ScrapingTime, &p.IsError)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	return &p, nil
}

func (r *predictionRepository) GetCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM prediction").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get prediction count: %w", err)
	}
	return count, nil
}

func (r *predictionRepository) GetErrorCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM prediction WHERE is_error = TRUE").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get prediction error count: %w", err)
	}
	return count, nil
}

// GetUnclassifiedCount returns rows whose classifier output is still null.
func (r *predictionRepository) GetUnclassifiedCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM prediction WHERE is_gambling_site IS NULL").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get unclassified count: %w", err)
	}
	return count, nil
}

// GetLabelMismatchCount returns rows that carry both an error flag and a
// classifier output. The schema does not forbid this combination; the count
// exists so drift is visible.
func (r *predictionRepository) GetLabelMismatchCount() (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM prediction
		WHERE is_error = TRUE AND is_gambling_site IS NOT NULL
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get label mismatch count: %w", err)
	}
	return count, nil
}
