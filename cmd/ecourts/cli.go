package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rjoshi/ecourts"
	"github.com/rjoshi/ecourts/scrape"
	"github.com/rjoshi/ecourts/sqlite"
)

// Portal is the slice of the browser session the commands drive. The human
// does the rest of the work in the window itself.
type Portal interface {
	OpenCauseList(ctx context.Context) error
	OpenCaseStatus(ctx context.Context, cnr string) error
	Cookies() ([]*http.Cookie, error)
	Location() (string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config   ecourts.Config
	DB       *sqlite.DB
	Sessions ecourts.SessionService

	Portal  Portal
	Scraper *scrape.Scraper

	// NewOrderFetcher builds the order-document downloader once the search
	// session's cookies and Referer are known.
	NewOrderFetcher func(dir, referer string, cookies []*http.Cookie) ecourts.OrderFetcher

	// Now supplies the clock for date labels and listing notices.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Causelist CauselistCmd `cmd:"" help:"Capture a cause list from the portal"`
	Search    SearchCmd    `cmd:"" help:"Search a case by CNR and capture its status"`
	Sessions  SessionsCmd  `cmd:"" help:"List recorded capture sessions"`
}

// CauselistCmd is the "causelist" subcommand.
type CauselistCmd struct {
	Tomorrow bool   `help:"Label the capture with tomorrow's date"`
	Date     string `help:"Explicit date label (dd-mm-yyyy); overrides --tomorrow"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	CNR         string `name:"cnr" required:"" help:"16-character CNR of the case"`
	DownloadPDF bool   `name:"download-pdf" help:"Download final-order PDFs after capture"`
}

// SessionsCmd is the "sessions" subcommand.
type SessionsCmd struct {
	Kind  string `help:"Filter by query kind (causelist or status)"`
	Limit int    `default:"20" help:"Maximum sessions to list"`
}
