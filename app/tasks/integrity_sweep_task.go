package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"gamblingstore/app/database"
)

// IntegritySweepTask surveys the soft link between prediction and
// error_report. The schema declares no foreign key, so nothing stops a
// report from existing without its prediction; the sweep only counts and
// logs, it never repairs.
type IntegritySweepTask struct {
	Task
	predictionRepo database.PredictionRepository
	reportRepo     database.ErrorReportRepository
}

func NewIntegritySweepTask(predictionRepo database.PredictionRepository,
	reportRepo database.ErrorReportRepository) *IntegritySweepTask {
	return &IntegritySweepTask{
		Task:           NewTask(TaskTypeIntegritySweep),
		predictionRepo: predictionRepo,
		reportRepo:     reportRepo,
	}
}

func (t *IntegritySweepTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	orphans, err := t.reportRepo.GetOrphanCount()
	if err != nil {
		return fmt.Errorf("failed to count orphaned error reports: %w", err)
	}

	unclassified, err := t.predictionRepo.GetUnclassifiedCount()
	if err != nil {
		return fmt.Errorf("failed to count unclassified predictions: %w", err)
	}

	mismatches, err := t.predictionRepo.GetLabelMismatchCount()
	if err != nil {
		return fmt.Errorf("failed to count label mismatches: %w", err)
	}

	if orphans > 0 {
		slog.Warn("Error reports without matching prediction",
			"count", orphans)
	}
	if mismatches > 0 {
		slog.Warn("Predictions flagged as error but carrying a label",
			"count", mismatches)
	}

	slog.Info("Task completed",
		"type", "IntegritySweep",
		"orphan_reports", orphans,
		"unclassified", unclassified,
		"label_mismatches", mismatches,
		"duration", t.GetDuration())

	return nil
}
