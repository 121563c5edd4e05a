package api

import (
	"gamblingstore/app/database"
)

type Handler struct {
	predictionRepo database.PredictionRepository
	reportRepo     database.ErrorReportRepository
	datasetRepo    database.DatasetRepository
}
