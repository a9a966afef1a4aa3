package mock

import (
	"context"

	"github.com/rjoshi/ecourts"
)

var _ ecourts.ResultLocator = (*ResultLocator)(nil)

// ResultLocator is a mock implementation of ecourts.ResultLocator.
type ResultLocator struct {
	LocateFn func(ctx context.Context, marker string) (ecourts.ResultSource, string, error)
}

func (l *ResultLocator) Locate(ctx context.Context, marker string) (ecourts.ResultSource, string, error) {
	return l.LocateFn(ctx, marker)
}
