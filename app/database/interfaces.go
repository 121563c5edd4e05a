package database

type PredictionRepository interface {
	Insert(p Prediction) error
	Get(webURL string) (*Prediction, error)

	GetCount() (int, error)
	GetErrorCount() (int, error)
	GetUnclassifiedCount() (int, error)
	GetLabelMismatchCount() (int, error)
}

type ErrorReportRepository interface {
	Insert(r ErrorReport) error
	Get(webURL string) (*ErrorReport, error)

	GetCount() (int, error)
	GetOrphanCount() (int, error)
}

type DatasetRepository interface {
	Insert(e DatasetEntry) error
	Get(webURL string) (*DatasetEntry, error)

	GetCount() (int, error)
	GetLabelCounts() (gambling int, legitimate int, err error)
}
