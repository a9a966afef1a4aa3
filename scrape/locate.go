package scrape

import (
	"context"
	"time"

	"github.com/rjoshi/ecourts"
	"golang.org/x/time/rate"
)

// Ensure Locator implements the interface.
var _ ecourts.ResultLocator = (*Locator)(nil)

// Locator polls a page accessor on a bounded timer to decide whether results
// appeared inline, inside the embedded frame, or not at all.
type Locator struct {
	Accessor  ecourts.PageAccessor
	Extractor ecourts.TableExtractor

	// Interval paces the polls, Deadline bounds the whole wait. Zero values
	// fall back to the package defaults.
	Interval time.Duration
	Deadline time.Duration
}

// Locate polls until marker content appears or the deadline passes.
//
// The frame is checked before the main document on every cycle, so when both
// populate within one cycle the frame wins. Accessor read errors within a
// cycle are tolerated; the page may be mid-navigation while the human works
// through the form. The deadline expiring is a reportable outcome, not an
// error; only cancellation of the caller's context aborts with its error.
func (l *Locator) Locate(ctx context.Context, marker string) (ecourts.ResultSource, string, error) {
	interval := l.Interval
	if interval <= 0 {
		interval = ecourts.DefaultPollInterval
	}
	deadline := l.Deadline
	if deadline <= 0 {
		deadline = ecourts.DefaultDeadline
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	// Burst 1: the first poll fires immediately, results may already be
	// rendered by the time the locator starts.
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			if parent.Err() != nil {
				return ecourts.SourceNone, "", parent.Err()
			}
			return ecourts.SourceNone, "", nil
		}

		if html, err := l.Accessor.FrameHTML(ctx); err == nil && l.Extractor.Present(html, marker) {
			return ecourts.SourceFrame, html, nil
		}
		if html, err := l.Accessor.MainHTML(ctx); err == nil && l.Extractor.Present(html, marker) {
			return ecourts.SourceInline, html, nil
		}
	}
}
