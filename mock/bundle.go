package mock

import (
	"context"

	"github.com/rjoshi/ecourts"
)

var _ ecourts.BundleWriter = (*BundleWriter)(nil)

// BundleWriter is a mock implementation of ecourts.BundleWriter.
type BundleWriter struct {
	WriteCauseListFn  func(ctx context.Context, records []*ecourts.CaseRecord) (*ecourts.ExportBundle, error)
	WriteCaseStatusFn func(ctx context.Context, record *ecourts.CaseStatusRecord) (*ecourts.ExportBundle, error)
}

func (w *BundleWriter) WriteCauseList(ctx context.Context, records []*ecourts.CaseRecord) (*ecourts.ExportBundle, error) {
	return w.WriteCauseListFn(ctx, records)
}

func (w *BundleWriter) WriteCaseStatus(ctx context.Context, record *ecourts.CaseStatusRecord) (*ecourts.ExportBundle, error) {
	return w.WriteCaseStatusFn(ctx, record)
}
