package rod

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/rjoshi/ecourts"
)

// Ensure Accessor implements ecourts.PageAccessor at compile time.
var _ ecourts.PageAccessor = (*Accessor)(nil)

// Accessor reads content off a live page. It never navigates; the human owns
// where the page goes.
type Accessor struct {
	page *rod.Page
}

// NewAccessor creates a new Accessor over a live page.
func NewAccessor(page *rod.Page) *Accessor {
	return &Accessor{page: page}
}

// MainHTML returns the current HTML of the main document.
func (a *Accessor) MainHTML(ctx context.Context) (string, error) {
	return a.page.Context(ctx).HTML()
}

// FrameHTML returns the current HTML of the results iframe. The portal
// renders some result sets into the first iframe instead of inline; while no
// frame exists the error is ENOTFOUND.
func (a *Accessor) FrameHTML(ctx context.Context) (string, error) {
	page := a.page.Context(ctx)

	frames, err := page.Elements("iframe")
	if err != nil {
		return "", err
	}
	if len(frames) == 0 {
		return "", ecourts.Errorf(ecourts.ENOTFOUND, "no results frame")
	}

	frame, err := frames.First().Frame()
	if err != nil {
		return "", err
	}
	return frame.HTML()
}
