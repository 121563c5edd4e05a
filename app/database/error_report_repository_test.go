package database

import (
	"errors"
	"testing"
	"time"
)

func TestErrorReportRepository_InsertWithoutPrediction(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewErrorReportRepository(db)

	// No matching prediction row exists; the schema declares no foreign key,
	// so this must succeed.
	err := repo.Insert(ErrorReport{
		WebURL:      "http://broken.example",
		Description: "timeout",
	})
	if err != nil {
		t.Fatalf("Insert without matching prediction should succeed, got: %v", err)
	}

	got, err := repo.Get("http://broken.example")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected error report to be retrievable")
	}
	if got.Description != "timeout" {
		t.Errorf("Expected description 'timeout', got '%s'", got.Description)
	}

	orphans, err := repo.GetOrphanCount()
	if err != nil {
		t.Fatalf("GetOrphanCount failed: %v", err)
	}
	if orphans != 1 {
		t.Errorf("Expected 1 orphaned report, got %d", orphans)
	}
}

func TestErrorReportRepository_OrphanCountWithMatch(t *testing.T) {
	db := newSchemaDB(t)
	reportRepo := NewErrorReportRepository(db)
	predictionRepo := NewPredictionRepository(db)

	err := predictionRepo.Insert(Prediction{
		WebURL:       "http://broken.example",
		ScrapingTime: time.Now().UTC(),
		IsError:      true,
	})
	if err != nil {
		t.Fatalf("Prediction insert failed: %v", err)
	}

	err = reportRepo.Insert(ErrorReport{
		WebURL:      "http://broken.example",
		Description: "element not found",
	})
	if err != nil {
		t.Fatalf("Report insert failed: %v", err)
	}

	orphans, err := reportRepo.GetOrphanCount()
	if err != nil {
		t.Fatalf("GetOrphanCount failed: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Expected 0 orphaned reports, got %d", orphans)
	}
}

func TestErrorReportRepository_DuplicateURLRejected(t *testing.T) {
	db := newSchemaDB(t)
	repo := NewErrorReportRepository(db)

	report := ErrorReport{WebURL: "http://broken.example", Description: "timeout"}

	if err := repo.Insert(report); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := repo.Insert(report)
	if err == nil {
		t.Fatal("Second insert with same web_url should fail")
	}
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("Expected ErrConstraintViolation, got: %v", err)
	}
}

func TestErrorReport_NullDescriptionRejected(t *testing.T) {
	db := newSchemaDB(t)

	_, err := db.Exec(`
		INSERT INTO error_report (web_url, description) VALUES (?, ?)
	`, "http://broken.example", nil)

	if err == nil {
		t.Fatal("Insert with null description should fail")
	}
	if !errors.Is(wrapStorageErr(err), ErrConstraintViolation) {
		t.Errorf("Expected a constraint violation, got: %v", err)
	}
}
