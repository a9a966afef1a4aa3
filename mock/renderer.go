package mock

import "github.com/rjoshi/ecourts"

var _ ecourts.DocumentRenderer = (*DocumentRenderer)(nil)

// DocumentRenderer is a mock implementation of ecourts.DocumentRenderer.
type DocumentRenderer struct {
	RenderCauseListFn  func(records []*ecourts.CaseRecord) (string, error)
	RenderCaseStatusFn func(record *ecourts.CaseStatusRecord) (string, error)
}

func (r *DocumentRenderer) RenderCauseList(records []*ecourts.CaseRecord) (string, error) {
	return r.RenderCauseListFn(records)
}

func (r *DocumentRenderer) RenderCaseStatus(record *ecourts.CaseStatusRecord) (string, error) {
	return r.RenderCaseStatusFn(record)
}
