package ecourts

// DocumentRenderer produces human-readable paginated summaries of normalized
// records. The persistence writer consumes the output alongside the
// structured document. Output need not be byte-stable across runs, only
// content-equivalent.
type DocumentRenderer interface {
	// RenderCauseList renders a cause-list record set.
	// Zero records renders an empty summary.
	RenderCauseList(records []*CaseRecord) (string, error)

	// RenderCaseStatus renders a single case-status record.
	RenderCaseStatus(record *CaseStatusRecord) (string, error)
}
