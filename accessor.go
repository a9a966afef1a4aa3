package ecourts

import "context"

// ResultSource identifies where on the portal page the result content that a
// locate operation settled on was found.
type ResultSource string

const (
	// SourceInline means the results rendered directly in the page document.
	SourceInline ResultSource = "inline"

	// SourceFrame means the results rendered inside the embedded result frame.
	SourceFrame ResultSource = "frame"

	// SourceNone means no results appeared before the deadline.
	SourceNone ResultSource = "none"
)

// PageAccessor reads content from the live portal page.
// Implementations wrap a browser page; the accessor never navigates.
type PageAccessor interface {
	// MainHTML returns the current serialized HTML of the page document.
	// The context controls timeout and cancellation.
	MainHTML(ctx context.Context) (string, error)

	// FrameHTML returns the serialized HTML of the embedded result frame.
	// Returns ENOTFOUND if the page has no such frame; absence is routine
	// before the portal has responded.
	FrameHTML(ctx context.Context) (string, error)
}
