package mock

import (
	"context"

	"github.com/rjoshi/ecourts"
)

var _ ecourts.OrderFetcher = (*OrderFetcher)(nil)

// OrderFetcher is a mock implementation of ecourts.OrderFetcher.
type OrderFetcher struct {
	FetchOrdersFn func(ctx context.Context, links []*ecourts.OrderLink) ([]string, error)
}

func (f *OrderFetcher) FetchOrders(ctx context.Context, links []*ecourts.OrderLink) ([]string, error) {
	return f.FetchOrdersFn(ctx, links)
}
