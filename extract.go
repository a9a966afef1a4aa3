package ecourts

// Result markers, expressed as CSS selectors. The portal identifies result
// regions by stable structure and class names, never by visual layout.
const (
	// MarkerCauseList matches the hearings table on a cause-list result page.
	MarkerCauseList = "table"

	// MarkerCaseStatus matches the main details table on a CNR result page.
	MarkerCaseStatus = "div#history_cnr table.case_status_table"

	// MarkerHistory matches the hearing-history table on a CNR result page.
	MarkerHistory = "table.history_table"

	// MarkerOrders matches the final-orders table on a CNR result page.
	MarkerOrders = "table.order_table"
)

// RawRow is the ordered sequence of trimmed cell texts of one table row,
// header row excluded. Source tables are not guaranteed regular: rows may
// carry fewer or more cells than the header.
type RawRow []string

// Table is a results table extracted from captured HTML.
type Table struct {
	// Header holds the header-row cell texts, nil when the table has no
	// header row.
	Header []string

	// Rows holds the data rows. Rows shorter than the header are padded
	// with empty cells; longer rows keep every cell.
	Rows []RawRow
}

// TableExtractor parses result tables out of captured HTML.
type TableExtractor interface {
	// Extract parses the first table matching marker.
	// Returns ENOTFOUND when the marker selects nothing; a matched table
	// with zero data rows is a valid empty result, not an error.
	Extract(html, marker string) (*Table, error)

	// ExtractAll parses every table matching marker, in document order.
	// Returns ENOTFOUND when the marker selects nothing.
	ExtractAll(html, marker string) ([]*Table, error)

	// Present reports whether marker selects anything in html.
	Present(html, marker string) bool
}
