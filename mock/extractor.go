package mock

import "github.com/rjoshi/ecourts"

var _ ecourts.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of ecourts.TableExtractor.
type TableExtractor struct {
	ExtractFn    func(html, marker string) (*ecourts.Table, error)
	ExtractAllFn func(html, marker string) ([]*ecourts.Table, error)
	PresentFn    func(html, marker string) bool
}

func (e *TableExtractor) Extract(html, marker string) (*ecourts.Table, error) {
	return e.ExtractFn(html, marker)
}

func (e *TableExtractor) ExtractAll(html, marker string) ([]*ecourts.Table, error) {
	return e.ExtractAllFn(html, marker)
}

func (e *TableExtractor) Present(html, marker string) bool {
	return e.PresentFn(html, marker)
}
