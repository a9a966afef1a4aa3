// Package rod drives the portal through a visible Chrome session. The human
// operates the page (fills the form, solves the CAPTCHA, submits); code only
// navigates, pre-fills, and reads.
package rod

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rjoshi/ecourts"
)

// cnrInput is the portal's CNR search entry point. Clicking it reveals the
// input; the same element then receives the number.
const cnrInput = "#cino"

// Browser is one visible Chrome session against the portal.
// Close must be called when the Browser is no longer needed.
type Browser struct {
	baseURL  *url.URL
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	closed   atomic.Bool
}

// NewBrowser launches a visible Chrome window on a blank page. The window
// stays in the foreground for the whole session; the CAPTCHA is unsolvable
// otherwise.
func NewBrowser(baseURL string) (*Browser, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, ecourts.Errorf(ecourts.EINVALID, "invalid base URL %q", baseURL)
	}

	l := launcher.New().
		Leakless(true).
		Headless(false)

	u, err := l.Launch()
	if err != nil {
		return nil, ecourts.Errorf(ecourts.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, ecourts.Errorf(ecourts.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.Close()
		l.Kill()
		return nil, ecourts.Errorf(ecourts.EUNAVAILABLE, "opening page: %v", err)
	}

	return &Browser{
		baseURL:  base,
		browser:  browser,
		launcher: l,
		page:     page,
	}, nil
}

// OpenCauseList navigates to the portal's cause-list query page and leaves
// the rest to the human.
func (b *Browser) OpenCauseList(ctx context.Context) error {
	page := b.page.Context(ctx)

	target := b.baseURL.ResolveReference(&url.URL{RawQuery: "p=cause_list/index"})
	if err := page.Navigate(target.String()); err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "opening cause-list page: %v", err)
	}
	if err := page.WaitLoad(); err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "loading cause-list page: %v", err)
	}
	return nil
}

// OpenCaseStatus navigates to the portal, reveals the CNR search input, and
// pre-fills it with cnr. The CAPTCHA and the submit stay human actions.
func (b *Browser) OpenCaseStatus(ctx context.Context, cnr string) error {
	page := b.page.Context(ctx)

	if err := page.Navigate(b.baseURL.String()); err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "opening portal: %v", err)
	}
	if err := page.WaitLoad(); err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "loading portal: %v", err)
	}

	el, err := page.Element(cnrInput)
	if err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "finding CNR search input: %v", err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "revealing CNR search input: %v", err)
	}

	el, err = page.Element(cnrInput)
	if err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "finding CNR search input: %v", err)
	}
	if err := el.Input(cnr); err != nil {
		return ecourts.Errorf(ecourts.EUNAVAILABLE, "pre-filling CNR: %v", err)
	}
	return nil
}

// Page hands the live page to the content accessor.
func (b *Browser) Page() *rod.Page {
	return b.page
}

// Cookies exports the session's cookies. The portal gates order-document
// downloads behind the browser session, so the downloader has to present
// them.
func (b *Browser) Cookies() ([]*http.Cookie, error) {
	cookies, err := b.browser.GetCookies()
	if err != nil {
		return nil, err
	}
	out := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, &http.Cookie{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   c.Path,
		})
	}
	return out, nil
}

// Location returns the page's current URL, used as the download Referer.
func (b *Browser) Location() (string, error) {
	info, err := b.page.Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if b.browser != nil {
		err = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}
