package ecourts

import "context"

// OrderLink is a final-order document reference recovered from a case's
// order table. The portal hides the download path inside each anchor's
// onclick payload rather than an href.
type OrderLink struct {
	// Caption is the anchor's visible text.
	Caption string `json:"caption"`

	// URL is the absolute download URL.
	URL string `json:"url"`
}

// OrderFetcher downloads final-order documents into the orders directory.
type OrderFetcher interface {
	// FetchOrders downloads every link and returns the saved paths.
	// A failed link does not abort the others; the first failure is
	// reported in the returned error alongside whatever was saved.
	FetchOrders(ctx context.Context, links []*OrderLink) ([]string, error)
}
