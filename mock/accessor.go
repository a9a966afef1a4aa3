package mock

import (
	"context"

	"github.com/rjoshi/ecourts"
)

var _ ecourts.PageAccessor = (*PageAccessor)(nil)

// PageAccessor is a mock implementation of ecourts.PageAccessor.
type PageAccessor struct {
	MainHTMLFn  func(ctx context.Context) (string, error)
	FrameHTMLFn func(ctx context.Context) (string, error)
}

func (a *PageAccessor) MainHTML(ctx context.Context) (string, error) {
	return a.MainHTMLFn(ctx)
}

func (a *PageAccessor) FrameHTML(ctx context.Context) (string, error) {
	return a.FrameHTMLFn(ctx)
}
