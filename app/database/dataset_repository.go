package database

import (
	"database/sql"
	"fmt"
)

var _ DatasetRepository = (*datasetRepository)(nil)

type datasetRepository struct {
	db *DB
}

func NewDatasetRepository(db *DB) DatasetRepository {
	return &datasetRepository{db: db}
}

func (r *datasetRepository) Insert(entry DatasetEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO dataset (web_url, scraping_time, is_gambling_site)
		VALUES (?, ?, ?)
	`, entry.WebURL, entry.ScrapingTime, entry.IsGamblingSite)

	if err != nil {
		return fmt.Errorf("failed to insert dataset entry: %w", wrapStorageErr(err))
	}

	return nil
}

func (r *datasetRepository) Get(webURL string) (*DatasetEntry, error) {
	var entry DatasetEntry
	err := r.db.QueryRow(`
		SELECT web_url, scraping_time, is_gambling_site
		FROM dataset
		WHERE web_url = ?
	`, webURL).Scan(&entry.WebURL, &entry.ScrapingTime, &entry.IsGamblingSite)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset entry: %w", err)
	}

	return &entry, nil
}

func (r *datasetRepository) GetCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM dataset").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get dataset count: %w", err)
	}
	return count, nil
}

// GetLabelCounts returns how many entries are labeled gambling and how many
// are labeled legitimate.
func (r *datasetRepository) GetLabelCounts() (int, int, error) {
	var gambling, legitimate int
	err := r.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN is_gambling_site THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_gambling_site THEN 0 ELSE 1 END), 0)
		FROM dataset
	`).Scan(&gambling, &legitimate)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get dataset label counts: %w", err)
	}
	return gambling, legitimate, nil
}
