// Package resty downloads final-order documents over the browser's session.
package resty

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rjoshi/ecourts"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Ensure Fetcher implements ecourts.OrderFetcher at compile time.
var _ ecourts.OrderFetcher = (*Fetcher)(nil)

const (
	// downloadTimeout bounds one document download.
	downloadTimeout = 30 * time.Second

	// downloadConcurrency caps in-flight downloads per case.
	downloadConcurrency = 2

	// defaultRPS paces requests against the portal.
	defaultRPS   = 2
	defaultBurst = 2
)

// Fetcher downloads order documents into the orders directory. The portal
// rejects bare requests: every download carries the browser session's
// cookies and a Referer from the result page.
type Fetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
	dir     string

	rps     float64
	burst   int
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRate overrides the download pacing.
func WithRate(rps float64, burst int) Option {
	return func(f *Fetcher) {
		f.rps = rps
		f.burst = burst
	}
}

// WithTimeout overrides the per-download timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher saving into dir. cookies and referer come
// from the live browser session.
func NewFetcher(dir, referer string, cookies []*http.Cookie, opts ...Option) *Fetcher {
	f := &Fetcher{
		dir:     dir,
		rps:     defaultRPS,
		burst:   defaultBurst,
		timeout: downloadTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.limiter = rate.NewLimiter(rate.Limit(f.rps), f.burst)

	client := resty.New()
	client.SetCookies(cookies)
	client.SetHeader("Referer", referer)
	client.SetTimeout(f.timeout)
	client.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
		return f.limiter.Wait(r.Context())
	})
	f.client = client

	return f
}

// FetchOrders downloads every link and returns the saved paths in link
// order. A failed link does not abort the others; the first failure is
// reported alongside whatever was saved.
func (f *Fetcher) FetchOrders(ctx context.Context, links []*ecourts.OrderLink) ([]string, error) {
	if len(links) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)

	paths := make([]string, len(links))
	errs := make([]error, len(links))
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			saved, err := f.download(gctx, link)
			if err != nil {
				errs[i] = err
				return nil
			}
			paths[i] = saved
			return nil
		})
	}
	_ = g.Wait()

	var saved []string
	var firstErr error
	for i, p := range paths {
		if p != "" {
			saved = append(saved, p)
		}
		if errs[i] != nil && firstErr == nil {
			firstErr = errs[i]
		}
	}
	return saved, firstErr
}

// download fetches one document and writes it under the orders directory.
func (f *Fetcher) download(ctx context.Context, link *ecourts.OrderLink) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(link.URL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", ecourts.Errorf(ecourts.EUNAVAILABLE, "order download %q: status %s", link.URL, resp.Status())
	}

	target := filepath.Join(f.dir, documentName(link.URL))
	if err := os.WriteFile(target, resp.Body(), 0644); err != nil {
		return "", err
	}
	return target, nil
}

// documentName derives the local file name from the download URL's last path
// segment, as the portal names its documents.
func documentName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "order.pdf"
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "order.pdf"
	}
	return name
}
