package database

import (
	"time"
)

// Prediction is an automated classification outcome for a scraped URL.
type Prediction struct {
	WebURL         string
	IsGamblingSite *bool // nil means not yet classified or skipped due to error
	ScrapingTime   time.Time
	IsError        bool // when true, IsGamblingSite is expected to be nil (not enforced by the schema)
}

// ErrorReport is a free-text explanation attached to a URL whose scraping or
// classification failed. Linked to prediction by shared web_url only; there
// is no enforced foreign key.
type ErrorReport struct {
	WebURL      string
	Description string
}

// DatasetEntry is a manually labeled ground-truth example used for model
// training. Unlike Prediction, the label is never unknown.
type DatasetEntry struct {
	WebURL         string
	ScrapingTime   time.Time
	IsGamblingSite bool
}
