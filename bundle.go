package ecourts

import "context"

// ExportBundle pairs one structured document with one rendered document
// sharing the same identifier.
type ExportBundle struct {
	// ID is derived from the wall-clock second of the write
	// (dd_mm_yyyy_hh_mm_ss). Two captures completing within the same second
	// get distinct IDs via a numeric suffix, never an overwrite.
	ID string `json:"id"`

	Kind QueryKind `json:"kind"`

	DataPath    string `json:"dataPath"`
	SummaryPath string `json:"summaryPath"`

	Records int `json:"records"`
}

// BundleWriter persists normalized records durably. Files are written to a
// temporary path and renamed into place, so a half-written file is never
// observable under a final name. Failures are EINTERNAL and fatal for the
// invocation.
type BundleWriter interface {
	// WriteCauseList persists a cause-list record set. Zero records still
	// writes a valid empty document; absence of data is a legitimate
	// outcome to persist.
	WriteCauseList(ctx context.Context, records []*CaseRecord) (*ExportBundle, error)

	// WriteCaseStatus persists a single case-status record.
	WriteCaseStatus(ctx context.Context, record *CaseStatusRecord) (*ExportBundle, error)
}
