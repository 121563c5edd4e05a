package database

import (
	"errors"
	"testing"
	"time"
)

func TestDatasetRepository_InsertAndGet(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewDatasetRepository(db)

	scrapingTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := repo.Insert(DatasetEntry{
		WebURL:         "http://casino.example",
		ScrapingTime:   scrapingTime,
		IsGamblingSite: true,
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := repo.Get("http://casino.example")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected dataset entry to be retrievable by primary key")
	}

	// The stored label must be exactly true, no coercion to null or default.
	if got.IsGamblingSite != true {
		t.Errorf("Expected is_gambling_site true, got %v", got.IsGamblingSite)
	}
	if !got.ScrapingTime.Equal(scrapingTime) {
		t.Errorf("Expected scraping_time %v, got %v", scrapingTime, got.ScrapingTime)
	}
}

func TestDataset_NullLabelRejected(t *testing.T) {
	db := newSchemaDB(t)

	// Unlike prediction, the dataset label column is non-nullable.
	_, err := db.Exec(`
		INSERT INTO dataset (web_url, scraping_time, is_gambling_site)
		VALUES (?, ?, ?)
	`, "http://casino.example", time.Now(), nil)

	if err == nil {
		t.Fatal("Insert with null is_gambling_site should fail")
	}
	if !errors.Is(wrapStorageErr(err), ErrConstraintViolation) {
		t.Errorf("Expected a constraint violation, got: %v", err)
	}
}

func TestDataset_NullWebURLRejected(t *testing.T) {
	db := newSchemaDB(t)

	_, err := db.Exec(`
		INSERT INTO dataset (web_url, scraping_time, is_gambling_site)
		VALUES (?, ?, ?)
	`, nil, time.Now(), true)

	if err == nil {
		t.Fatal("Insert with null web_url should fail")
	}
	if !errors.Is(wrapStorageErr(err), ErrConstraintViolation) {
		t.Errorf("Expected a constraint violation, got: %v", err)
	}
}

func TestDatasetRepository_DuplicateURLRejected(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewDatasetRepository(db)

	entry := DatasetEntry{
		WebURL:         "http://casino.example",
		ScrapingTime:   time.Now().UTC(),
		IsGamblingSite: true,
	}

	if err := repo.Insert(entry); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := repo.Insert(entry)
	if err == nil {
		t.Fatal("Second insert with same web_url should fail")
	}
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("Expected ErrConstraintViolation, got: %v", err)
	}
}

func TestDatasetRepository_LabelCounts(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewDatasetRepository(db)

	now := time.Now().UTC()
	entries := []DatasetEntry{
		{WebURL: "http://casino.example", ScrapingTime: now, IsGamblingSite: true},
		{WebURL: "http://slots.example", ScrapingTime: now, IsGamblingSite: true},
		{WebURL: "http://news.example", ScrapingTime: now, IsGamblingSite: false},
	}
	for _, e := range entries {
		if err := repo.Insert(e); err != nil {
			t.Fatalf("Insert failed for %s: %v", e.WebURL, err)
		}
	}

	gambling, legitimate, err := repo.GetLabelCounts()
	if err != nil {
		t.Fatalf("GetLabelCounts failed: %v", err)
	}
	if gambling != 2 {
		t.Errorf("Expected 2 gambling labels, got %d", gambling)
	}
	if legitimate != 1 {
		t.Errorf("Expected 1 legitimate label, got %d", legitimate)
	}
}

func TestDatasetRepository_EmptyLabelCounts(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewDatasetRepository(db)

	gambling, legitimate, err := repo.GetLabelCounts()
	if err != nil {
		t.Fatalf("GetLabelCounts failed on empty table: %v", err)
	}
	if gambling != 0 || legitimate != 0 {
		t.Errorf("Expected 0/0 on empty table, got %d/%d", gambling, legitimate)
	}
}
