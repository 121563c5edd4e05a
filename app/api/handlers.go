package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamblingstore/app/database"
)

func NewHandler(predictionRepo database.PredictionRepository,
	reportRepo database.ErrorReportRepository,
	datasetRepo database.DatasetRepository) *Handler {
	return &Handler{
		predictionRepo: predictionRepo,
		reportRepo:     reportRepo,
		datasetRepo:    datasetRepo,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if count, err := h.predictionRepo.GetCount(); err == nil {
		health["predictions"] = count
	}
	if count, err := h.datasetRepo.GetCount(); err == nil {
		health["dataset_entries"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{}

	predictions := map[string]interface{}{}
	if count, err := h.predictionRepo.GetCount(); err == nil {
		predictions["total"] = count
	}
	if count, err := h.predictionRepo.GetErrorCount(); err == nil {
		predictions["errors"] = count
	}
	if count, err := h.predictionRepo.GetUnclassifiedCount(); err == nil {
		predictions["unclassified"] = count
	}
	if count, err := h.predictionRepo.GetLabelMismatchCount(); err == nil {
		predictions["label_mismatches"] = count
	}
	stats["predictions"] = predictions

	reports := map[string]interface{}{}
	if count, err := h.reportRepo.GetCount(); err == nil {
		reports["total"] = count
	}
	if count, err := h.reportRepo.GetOrphanCount(); err == nil {
		reports["orphaned"] = count
	}
	stats["error_reports"] = reports

	dataset := map[string]interface{}{}
	if count, err := h.datasetRepo.GetCount(); err == nil {
		dataset["total"] = count
	}
	if gambling, legitimate, err := h.datasetRepo.GetLabelCounts(); err == nil {
		dataset["gambling"] = gambling
		dataset["legitimate"] = legitimate
	}
	stats["dataset"] = dataset

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APIGetPrediction(c *gin.Context) {
	webURL := c.Query("url")
	if webURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	prediction, err := h.predictionRepo.Get(webURL)
	if err != nil {
		slog.Error("Database error", "operation", "get_prediction", "url", webURL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if prediction == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prediction not found"})
		return
	}

	response := gin.H{
		"web_url":          prediction.WebURL,
		"is_gambling_site": prediction.IsGamblingSite,
		"scraping_time":    prediction.ScrapingTime.Format(time.RFC3339),
		"is_error":         prediction.IsError,
	}

	// The error report is attached via the shared web_url; the tables carry
	// no foreign key, so a flagged prediction may legitimately lack one.
	if prediction.IsError {
		report, err := h.reportRepo.Get(webURL)
		if err != nil {
			slog.Error("Database error", "operation", "get_error_report", "url", webURL, "error", err)
		} else if report != nil {
			response["error_report"] = report.Description
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) APIGetDatasetEntry(c *gin.Context) {
	webURL := c.Query("url")
	if webURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	entry, err := h.datasetRepo.Get(webURL)
	if err != nil {
		slog.Error("Database error", "operation", "get_dataset_entry", "url", webURL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"web_url":          entry.WebURL,
		"scraping_time":    entry.ScrapingTime.Format(time.RFC3339),
		"is_gambling_site": entry.IsGamblingSite,
	})
}
