package ecourts

import "context"

// ResultLocator decides where a submitted query's results rendered.
// Implementations poll a PageAccessor on a bounded timer.
type ResultLocator interface {
	// Locate polls until content matching marker appears, checking the
	// embedded frame before the main document on every cycle so that a
	// same-cycle tie resolves to the frame. Returns the source and the HTML
	// it settled on. Reaching the deadline with no match is a reportable
	// outcome, not an error: (SourceNone, "", nil).
	Locate(ctx context.Context, marker string) (ResultSource, string, error)
}
